package vm

// signal tells execFrame's main loop what to do after an instruction
// beyond its ordinary side effects: nothing, recurse into a call, or
// unwind this frame.
type signal int

const (
	sigNone signal = iota
	sigCall
	sigReturn
)

// opFunc is one dispatch-table entry. It mirrors wagon's
// funcTable [256]func() — a flat, opcode-indexed array of closures —
// except each entry here can also signal a call/return and return a
// fatal Error instead of panicking.
type opFunc func(ip *Interpreter, fr *frame) (signal, *Error)

// opTable is keyed directly by instruction byte. `?`, `"`, `!` and `;`
// are deliberately absent: they always execute, shaping the If/Else
// Stack before the skip policy is even evaluated, so they're handled
// inline in processInstruction rather than through this table.
var opTable [256]opFunc

func init() {
	opTable['>'] = opNextCell
	opTable['<'] = opPreviousCell
	opTable['+'] = opNextBit
	opTable['-'] = opPreviousBit
	opTable['|'] = opFirstCell
	opTable['='] = opFirstBit
	opTable['_'] = opSetZero
	opTable['^'] = opSetOne
	opTable['*'] = opSetNull
	opTable['%'] = opClearCell
	opTable[']'] = opOutput
	opTable['['] = opInput
	opTable['#'] = opEnqueue
	opTable['&'] = opDequeue
	opTable['/'] = opNextLabel
	opTable['\\'] = opPreviousLabel
	opTable['$'] = opFirstLabel
	opTable['\''] = opJump
	opTable['@'] = opCall
	opTable['~'] = opReturn
}

func opNextCell(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.NextCell()
	return sigNone, nil
}

func opPreviousCell(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.PreviousCell()
	return sigNone, nil
}

func opNextBit(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().NextBit()
	return sigNone, nil
}

func opPreviousBit(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().PreviousBit()
	return sigNone, nil
}

func opFirstCell(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.FirstCell()
	return sigNone, nil
}

func opFirstBit(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().FirstBit()
	return sigNone, nil
}

func opSetZero(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().SetZero()
	return sigNone, nil
}

func opSetOne(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().SetOne()
	return sigNone, nil
}

func opSetNull(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().SetNull()
	return sigNone, nil
}

func opClearCell(ip *Interpreter, fr *frame) (signal, *Error) {
	fr.tape.Current().Clear()
	return sigNone, nil
}

func opOutput(ip *Interpreter, fr *frame) (signal, *Error) {
	b := fr.tape.Current().ReadByte()
	ip.stdout.Write([]byte{b})
	return sigNone, nil
}

func opInput(ip *Interpreter, fr *frame) (signal, *Error) {
	cell := fr.tape.Current()
	cell.Clear()

	var buf [1]byte
	n, err := ip.stdin.Read(buf[:])
	if n != 1 || err != nil {
		return sigNone, newError(ErrUserInput)
	}
	cell.WriteByte(buf[0])
	return sigNone, nil
}

func opEnqueue(ip *Interpreter, fr *frame) (signal, *Error) {
	ip.queue.Enqueue(fr.tape.Current().BitSequence)
	return sigNone, nil
}

func opDequeue(ip *Interpreter, fr *frame) (signal, *Error) {
	if !ip.queue.Dequeue(fr.tape.Current().BitSequence) {
		return sigNone, newError(ErrEmptyGlobalStack)
	}
	return sigNone, nil
}

func opNextLabel(ip *Interpreter, fr *frame) (signal, *Error) {
	if !ip.labels.Next() {
		return sigNone, newError(ErrLabelCursorOutsideOfBounds)
	}
	return sigNone, nil
}

func opPreviousLabel(ip *Interpreter, fr *frame) (signal, *Error) {
	if !ip.labels.Previous() {
		return sigNone, newError(ErrLabelCursorOutsideOfBounds)
	}
	return sigNone, nil
}

func opFirstLabel(ip *Interpreter, fr *frame) (signal, *Error) {
	if !ip.labels.First() {
		return sigNone, newError(ErrLabelCursorOutsideOfBounds)
	}
	return sigNone, nil
}

func opJump(ip *Interpreter, fr *frame) (signal, *Error) {
	pos, ok := ip.labels.Current()
	if !ok {
		return sigNone, newError(ErrJumpButNoLabel)
	}
	if err := ip.source.seek(pos); err != nil {
		return sigNone, newError(ErrSeekProgramPosition)
	}
	fr.ifElse.clear()
	return sigNone, nil
}

func opCall(ip *Interpreter, fr *frame) (signal, *Error) {
	return sigCall, nil
}

func opReturn(ip *Interpreter, fr *frame) (signal, *Error) {
	return sigReturn, nil
}
