package vm

import "github.com/boolx-lang/boolx/internal/memtape"

// frame is one activation of the Function Executor: it owns a Cell
// Tape and an If/Else Stack, both created fresh on entry and discarded
// on return or error (spec.md §3, §4.6). Unlike the original C
// source, which mutates process-wide globals and must explicitly
// save and restore them around a recursive call, a frame here is an
// ordinary Go value local to one execFrame invocation — the caller's
// frame is simply untouched while the callee runs its own.
type frame struct {
	tape   *memtape.CellTape
	ifElse *ifElseStack
}

func newFrame() *frame {
	return &frame{
		tape:   memtape.NewCellTape(),
		ifElse: &ifElseStack{},
	}
}
