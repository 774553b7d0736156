package memtape

// Cell is one slot of the tape: a Bit Sequence plus links to its tape
// neighbors.
type Cell struct {
	*BitSequence
	next *Cell
	prev *Cell
}

func newCell() *Cell {
	return &Cell{BitSequence: NewBitSequence()}
}

// CellTape is the per-frame doubly-linked list of cells. It is created
// fresh on every Function Executor activation and discarded on return
// or error; it is never shared between a caller and the frame it
// calls into.
type CellTape struct {
	first   *Cell
	current *Cell
}

// NewCellTape returns a tape with a single, empty first cell selected.
func NewCellTape() *CellTape {
	c := newCell()
	return &CellTape{first: c, current: c}
}

// Current returns the selected cell.
func (t *CellTape) Current() *Cell { return t.current }

// NextCell advances to the next cell, appending a fresh one lazily if
// the tape hasn't been extended this far yet.
func (t *CellTape) NextCell() {
	if t.current.next == nil {
		c := newCell()
		c.prev = t.current
		t.current.next = c
	}
	t.current = t.current.next
}

// PreviousCell moves back one cell; a no-op at the first cell.
func (t *CellTape) PreviousCell() {
	if t.current.prev != nil {
		t.current = t.current.prev
	}
}

// FirstCell resets the selection to this tape's anchor cell.
func (t *CellTape) FirstCell() {
	t.current = t.first
}

// Cells returns up to n cells starting at the first cell, for debug
// dumps (spec.md §6).
func (t *CellTape) Cells(n int) []*Cell {
	cells := make([]*Cell, 0, n)
	for c := t.first; c != nil && len(cells) < n; c = c.next {
		cells = append(cells, c)
	}
	return cells
}
