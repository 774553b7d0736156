package vm

import (
	"fmt"
	"io"
)

// ErrorKind enumerates the fatal error taxonomy of spec.md §7.
type ErrorKind int

const (
	_ ErrorKind = iota
	ErrStringTooLong
	ErrMisplacedElse
	ErrEndIf
	ErrLabelCursorOutsideOfBounds
	ErrJumpButNoLabel
	ErrSeekProgramPosition
	ErrEmptyGlobalStack
	ErrUserInput
)

var errorMessages = map[ErrorKind]string{
	ErrStringTooLong:              "buffer overflow in some string",
	ErrMisplacedElse:              "misplaced else statement",
	ErrEndIf:                      "unexpected end of IF condition or else statement",
	ErrLabelCursorOutsideOfBounds: "label pointer moved outside of bounds",
	ErrJumpButNoLabel:             "call or jump to a label, but there is no label at all",
	ErrSeekProgramPosition:        "can't read from the requested position after a jump or function call",
	ErrEmptyGlobalStack:           "tried to pop from the global stack but it's empty",
	ErrUserInput:                  "bad input",
}

// Error is a fatal BoolX execution error. Errors are fatal to the
// current frame: the frame that raises one discards its Cell Tape and
// If/Else Stack and unwinds without retry (spec.md §7).
type Error struct {
	Kind ErrorKind
}

func newError(kind ErrorKind) *Error { return &Error{Kind: kind} }

func (e *Error) Error() string {
	if msg, ok := errorMessages[e.Kind]; ok {
		return msg
	}
	return "unknown error"
}

// Report writes the fatal-error message in the exact wording spec.md
// §7 specifies.
func Report(w io.Writer, err error) {
	fmt.Fprintf(w, "The program has been terminated due to an error:\n  %s.\n", err.Error())
}
