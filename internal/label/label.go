// Package label implements BoolX's Label Table: a first pass over the
// source program that records the byte offset of every top-level `:`
// character, plus the current-label cursor that `/`, `\`, `$`, `@` and
// `'` navigate. See spec.md §4.5.
package label

import "io"

// Table holds the label offsets discovered during a scan, in the
// order they appear in the source, along with the current-label
// cursor. It is read-only after Scan returns; only the cursor moves.
type Table struct {
	offsets []int64
	cursor  int // index into offsets; -1 when there are no labels
}

// Scan reads r to EOF, tracking `{`/`}` comment nesting, and records
// the offset of every `:` seen at comment depth zero. The scanner's
// comment depth floors at zero on an unmatched `}` — unlike the
// Function Executor's, which does not (spec.md §9's third open
// question; see vm.Interpreter.commentDepth).
func Scan(r io.Reader) (*Table, error) {
	var offsets []int64
	var pos int64
	var depth int64

	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			b := buf[0]
			switch b {
			case '{':
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
			}
			if depth == 0 && b == ':' {
				offsets = append(offsets, pos)
			}
			pos++
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}

	cursor := -1
	if len(offsets) > 0 {
		cursor = 0
	}
	return &Table{offsets: offsets, cursor: cursor}, nil
}

// Len reports how many labels were discovered.
func (t *Table) Len() int { return len(t.offsets) }

// Offsets returns the discovered label offsets, in source order, for
// debug-mode reporting.
func (t *Table) Offsets() []int64 { return t.offsets }

// Current returns the byte offset the cursor selects. ok is false
// when no labels exist.
func (t *Table) Current() (int64, bool) {
	if t.cursor < 0 {
		return 0, false
	}
	return t.offsets[t.cursor], true
}

// Next moves the cursor forward one label. It reports false (leaving
// the cursor unchanged) if there are no labels or the cursor is
// already on the last one.
func (t *Table) Next() bool {
	if t.cursor < 0 || t.cursor+1 >= len(t.offsets) {
		return false
	}
	t.cursor++
	return true
}

// Previous moves the cursor back one label, symmetric to Next.
func (t *Table) Previous() bool {
	if t.cursor <= 0 {
		return false
	}
	t.cursor--
	return true
}

// First selects the first label. It reports false if there are none.
func (t *Table) First() bool {
	if len(t.offsets) == 0 {
		return false
	}
	t.cursor = 0
	return true
}
