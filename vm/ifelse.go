package vm

// condKind distinguishes an IF frame from one that has seen its `!`.
type condKind int

const (
	condIf condKind = iota
	condElse
)

// ifElseEntry is one If/Else Frame (spec.md §3): its skip_this_block
// is computed once, at push time, from the parent, and is never
// mutated afterward — only condition_result flips, on `!`.
type ifElseEntry struct {
	kind      condKind
	result    bool
	skipBlock bool
}

// ifElseStack is the nested conditional stack of one function frame.
// It is realized as a slice rather than the source's doubly-linked
// list of heap frames: "top" is always the last element, "parent" the
// one before it, and popping is a slice truncation — an idiomatic Go
// stand-in for the same nested-frame contract (spec.md §9's
// re-architecture guidance sanctions either representation as long as
// the skip_this_block asymmetry across `!` is preserved, which it is
// here: pushIf and toggleElse are the only writers, and only
// toggleElse may run after a frame is pushed, and it never touches
// skipBlock).
type ifElseStack struct {
	entries []ifElseEntry
}

// pushIf pushes a new IF frame with the given condition result,
// computing skip_this_block from the current top exactly as spec.md
// §4.3 describes.
func (s *ifElseStack) pushIf(result bool) {
	var skip bool
	if len(s.entries) > 0 {
		top := s.entries[len(s.entries)-1]
		skip = !(top.result && !top.skipBlock)
	}
	s.entries = append(s.entries, ifElseEntry{kind: condIf, result: result, skipBlock: skip})
}

// toggleElse turns the top IF frame into an ELSE frame, flipping its
// condition_result. It fails if there is no open frame or the top
// frame already saw its `!`.
func (s *ifElseStack) toggleElse() *Error {
	if len(s.entries) == 0 {
		return newError(ErrMisplacedElse)
	}
	top := &s.entries[len(s.entries)-1]
	if top.kind != condIf {
		return newError(ErrMisplacedElse)
	}
	top.kind = condElse
	top.result = !top.result
	return nil
}

// popEndIf closes the top frame. It fails if there is no open frame.
func (s *ifElseStack) popEndIf() *Error {
	if len(s.entries) == 0 {
		return newError(ErrEndIf)
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// shouldSkip reports the skip policy of spec.md §4.3: a non-
// conditional instruction executes iff the stack is empty, or the top
// frame is neither suppressed nor false.
func (s *ifElseStack) shouldSkip() bool {
	if len(s.entries) == 0 {
		return false
	}
	top := s.entries[len(s.entries)-1]
	return !(!top.skipBlock && top.result)
}

// clear drops the entire stack, as happens on frame return, on error,
// and after a successful jump (spec.md §4.3, §4.5).
func (s *ifElseStack) clear() {
	s.entries = s.entries[:0]
}
