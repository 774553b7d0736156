// Package vm implements BoolX's Instruction Dispatcher and Function
// Executor: the recursive driver that reads a source program one
// character at a time, applies the dispatch table, and implements
// call/return by recursing on itself with saved/restored source
// position (spec.md §4.6, §4.7).
package vm

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boolx-lang/boolx/internal/label"
	"github.com/boolx-lang/boolx/internal/memtape"
)

// sourceReader tracks the read/seek position of the shared source
// file the way the original interpreter tracks its FILE* cursor with
// ftell/fseek, so a caller can save its position before a call
// instruction recurses and restore it after.
type sourceReader struct {
	r   io.ReadSeeker
	pos int64
}

func newSourceReader(r io.ReadSeeker) *sourceReader {
	return &sourceReader{r: r}
}

func (s *sourceReader) readByte() (c byte, ok bool, err error) {
	var buf [1]byte
	n, rerr := s.r.Read(buf[:])
	if n == 1 {
		s.pos++
		return buf[0], true, nil
	}
	if rerr == io.EOF || rerr == nil {
		return 0, false, nil
	}
	return 0, false, rerr
}

func (s *sourceReader) seek(pos int64) error {
	if _, err := s.r.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	s.pos = pos
	return nil
}

func (s *sourceReader) tell() int64 { return s.pos }

// Interpreter drives one BoolX program run. It owns the process-wide
// state shared across every recursive call frame: the Global Queue,
// the Label Table (and the current-label cursor bundled inside it),
// and the comment-nesting depth (spec.md §9's "process-wide state").
// Per-frame state — the Cell Tape and If/Else Stack — lives in frame
// values local to each execFrame call instead.
type Interpreter struct {
	source *sourceReader
	labels *label.Table
	queue  *memtape.GlobalQueue

	stdin  io.Reader
	stdout io.Writer

	// commentDepth does not floor at zero when an unmatched `}` is
	// seen — unlike label.Table's scan — per spec.md §9's third open
	// question: the executor's permissiveness is preserved even
	// though it can transiently go negative.
	commentDepth int64

	debug          bool
	logger         *zap.Logger
	runID          string
	cellDumpDepth  int
	queueDumpDepth int
}

// Option configures an Interpreter constructed with New.
type Option func(*Interpreter)

// WithDebug turns on debug mode: a description line and a wait for
// Enter before every executable instruction, and a memory dump after
// every memory-affecting one (spec.md §6), plus structured frame
// events logged through logger.
func WithDebug(logger *zap.Logger) Option {
	return func(ip *Interpreter) {
		ip.debug = true
		ip.logger = logger
	}
}

// WithDumpDepths overrides the debug-mode tape/queue dump depths
// (default 10 and 10, per spec.md §6).
func WithDumpDepths(cells, queue int) Option {
	return func(ip *Interpreter) {
		ip.cellDumpDepth = cells
		ip.queueDumpDepth = queue
	}
}

// WithStdin overrides the interpreter's input stream (default
// os.Stdin); tests use it to feed canned input.
func WithStdin(r io.Reader) Option {
	return func(ip *Interpreter) { ip.stdin = r }
}

// WithStdout overrides the interpreter's output stream (default
// os.Stdout); tests use it to capture output.
func WithStdout(w io.Writer) Option {
	return func(ip *Interpreter) { ip.stdout = w }
}

// New builds an Interpreter over src, which must already have been
// scanned into labels by label.Scan and rewound to the start.
func New(src io.ReadSeeker, labels *label.Table, opts ...Option) *Interpreter {
	ip := &Interpreter{
		source:         newSourceReader(src),
		labels:         labels,
		queue:          memtape.NewGlobalQueue(),
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		cellDumpDepth:  10,
		queueDumpDepth: 10,
		runID:          uuid.NewString(),
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Run executes the program starting at byte offset 0, the "main
// function" of the source file.
func (ip *Interpreter) Run() *Error {
	if ip.debug {
		ip.logger = ip.logger.With(zap.String("run_id", ip.runID))
		ip.logger.Info("run started",
			zap.Int("labels", ip.labels.Len()),
		)
	}
	return ip.execFrame(0)
}

// execFrame is one activation of the Function Executor: it seeks the
// shared source to fromPos, opens a fresh Cell Tape and If/Else
// Stack, and reads instructions until return, EOF, or a fatal error.
// Call (`@`) re-enters this method recursively; only the shared
// source position needs explicit save/restore around the recursive
// call — the frame's own Cell Tape and If/Else Stack are untouched by
// construction, since the callee gets its own (spec.md §4.6).
func (ip *Interpreter) execFrame(fromPos int64) *Error {
	fr := newFrame()

	if err := ip.source.seek(fromPos); err != nil {
		return newError(ErrSeekProgramPosition)
	}

	if ip.debug {
		ip.logger.Debug("frame entered", zap.Int64("from_pos", fromPos))
	}

	for {
		c, ok, err := ip.source.readByte()
		if err != nil {
			return newError(ErrSeekProgramPosition)
		}
		if !ok {
			break
		}

		if c == '{' {
			ip.commentDepth++
			continue
		} else if c == '}' {
			ip.commentDepth--
			continue
		}
		if ip.commentDepth > 0 {
			continue
		}

		skip := !isConditionalChar(c) && fr.ifElse.shouldSkip()
		ip.debugBeforeInstruction(c, skip)

		sig, execErr := ip.processInstruction(c, fr)
		if execErr != nil {
			if ip.debug {
				ip.logger.Error("frame error", zap.String("kind", execErr.Error()))
			}
			return execErr
		}

		ip.debugAfterInstruction(c, skip, fr)

		switch sig {
		case sigCall:
			if ip.labels.Len() == 0 {
				return newError(ErrJumpButNoLabel)
			}
			target, _ := ip.labels.Current()

			savedPos := ip.source.tell()
			if ip.debug {
				ip.logger.Debug("call", zap.Int64("target", target))
			}
			if callErr := ip.execFrame(target); callErr != nil {
				return callErr
			}
			if err := ip.source.seek(savedPos); err != nil {
				return newError(ErrSeekProgramPosition)
			}

		case sigReturn:
			if ip.debug {
				ip.logger.Debug("return", zap.Int64("at_pos", ip.source.tell()))
			}
			return nil
		}
	}

	return nil
}

// processInstruction implements spec.md §4.7's dispatch: the
// conditional instructions always run, shaping the If/Else Stack;
// everything else is subject to the skip policy and then looked up in
// opTable. Characters with no table entry (`:`, and anything outside
// the 27-instruction alphabet) are no-ops.
func (ip *Interpreter) processInstruction(c byte, fr *frame) (signal, *Error) {
	switch c {
	case '?':
		fr.ifElse.pushIf(selectedEquals1(fr))
	case '"':
		fr.ifElse.pushIf(selectedIsNull(fr))
	case '!':
		if err := fr.ifElse.toggleElse(); err != nil {
			return sigNone, err
		}
	case ';':
		if err := fr.ifElse.popEndIf(); err != nil {
			return sigNone, err
		}
	}

	if fr.ifElse.shouldSkip() {
		return sigNone, nil
	}

	if fn := opTable[c]; fn != nil {
		return fn(ip, fr)
	}
	return sigNone, nil
}

func selectedEquals1(fr *frame) bool {
	v, ok := fr.tape.Current().Selected()
	return ok && v
}

func selectedIsNull(fr *frame) bool {
	_, ok := fr.tape.Current().Selected()
	return !ok
}

func isConditionalChar(c byte) bool {
	switch c {
	case '?', '"', '!', ';':
		return true
	}
	return false
}
