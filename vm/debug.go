package vm

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/boolx-lang/boolx/internal/memtape"
)

// isMemoryAffecting reports whether an instruction can change the Cell
// Tape or Global Queue contents, per spec.md §6: only these trigger a
// memory dump after execution in debug mode.
func isMemoryAffecting(c byte) bool {
	switch c {
	case '+', '-', '=', '_', '^', '*', '%', '[', '#', '&':
		return true
	}
	return false
}

// isEmptyCharacter reports whether c is pure source formatting — a
// carriage return, newline, tab, or space — that dbg_print_instruction
// in the original source skips entirely: no description line, no wait
// for Enter. Without this, any realistically formatted program (with
// line breaks) would demand an extra Enter press per newline.
func isEmptyCharacter(c byte) bool {
	switch c {
	case '\r', '\n', '\t', ' ':
		return true
	}
	return false
}

// debugBeforeInstruction prints the pending-instruction line and waits
// for Enter, the interactive half of spec.md §6's debug contract. It
// is a no-op when debug mode is off or c is pure formatting.
func (ip *Interpreter) debugBeforeInstruction(c byte, skip bool) {
	if !ip.debug || isEmptyCharacter(c) {
		return
	}
	status := "executing"
	if skip {
		status = "skipping"
	}
	fmt.Fprintf(ip.debugOut(), "[%s] %q\n", status, string(c))
	ip.waitForEnter()
}

// debugAfterInstruction dumps the Cell Tape and Global Queue once a
// memory-affecting instruction has run, and logs a structured event
// through zap independent of that raw transcript.
func (ip *Interpreter) debugAfterInstruction(c byte, skip bool, fr *frame) {
	if !ip.debug {
		return
	}
	if ip.logger != nil {
		ip.logger.Debug("instruction",
			zap.String("op", string(c)),
			zap.Bool("skipped", skip),
		)
	}
	if skip || !isMemoryAffecting(c) {
		return
	}
	fmt.Fprintln(ip.debugOut(), dumpTape(fr.tape, ip.cellDumpDepth))
	fmt.Fprintln(ip.debugOut(), dumpQueue(ip.queue, ip.queueDumpDepth))
}

// debugOut is where the interactive debug transcript goes: stdout,
// same as the program's own output, since the transcript is part of
// the observable contract rather than a diagnostic stream.
func (ip *Interpreter) debugOut() io.Writer {
	return ip.stdout
}

func (ip *Interpreter) waitForEnter() {
	var buf [1]byte
	ip.stdin.Read(buf[:])
}

// formatBits renders a bit sequence snapshot the way spec.md §6
// describes the debug dump: one character per bit ('0'/'1') in
// human-readable order (last bit leftmost, first bit rightmost), after
// one blank leading column, and a caret on the line below marking the
// selected bit. The caret sits in the blank column when the selected
// bit is null past the end of the sequence.
func formatBits(values []bool, cursorPos int) string {
	n := len(values)
	bits := make([]byte, n+1)
	bits[0] = ' '
	for i, v := range values {
		if v {
			bits[n-i] = '1'
		} else {
			bits[n-i] = '0'
		}
	}
	marker := make([]byte, n+1)
	for i := range marker {
		marker[i] = ' '
	}
	if cursorPos <= n {
		marker[n-cursorPos] = '^'
	}
	return string(bits) + "\n" + string(marker)
}

// dumpTape renders up to depth cells of a Cell Tape for debug output.
func dumpTape(tape *memtape.CellTape, depth int) string {
	out := "cells:\n"
	for i, cell := range tape.Cells(depth) {
		values, cursor := cell.Snapshot()
		marker := ""
		if cell == tape.Current() {
			marker = " (selected)"
		}
		out += fmt.Sprintf("  [%d]%s\n%s\n", i, marker, formatBits(values, cursor))
	}
	return out
}

// dumpQueue renders up to depth cells of the Global Queue for debug
// output.
func dumpQueue(q *memtape.GlobalQueue, depth int) string {
	out := "queue:\n"
	for i, cell := range q.Cells(depth) {
		values, cursor := cell.Snapshot()
		out += fmt.Sprintf("  [%d]\n%s\n", i, formatBits(values, cursor))
	}
	return out
}
