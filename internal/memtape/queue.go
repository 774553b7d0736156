package memtape

// GlobalCell is a Bit Sequence with a forward link only, owned
// exclusively by the GlobalQueue that holds it.
type GlobalCell struct {
	*BitSequence
	next *GlobalCell
}

// GlobalQueue is the program-lifetime FIFO of Global Cells shared
// across every function frame. Despite the "stack" name carried by
// the original error surface (spec.md §4.4), it enqueues at the back
// and dequeues from the front.
type GlobalQueue struct {
	front *GlobalCell
	back  *GlobalCell
}

// NewGlobalQueue returns an empty queue.
func NewGlobalQueue() *GlobalQueue { return &GlobalQueue{} }

// Empty reports whether the queue holds no cells.
func (q *GlobalQueue) Empty() bool { return q.front == nil }

// Enqueue copies src's bits, node by node, into a new Global Cell
// appended at the back. The source cell keeps its own bits; this is a
// copy, not a move.
func (q *GlobalQueue) Enqueue(src *BitSequence) {
	gc := &GlobalCell{BitSequence: NewBitSequence()}

	cur := src.sentinel
	dst := gc.sentinel
	for cur.next != nil {
		node := &bitNode{value: cur.next.value, prev: dst}
		dst.next = node
		dst = node
		cur = cur.next
	}

	if q.back == nil {
		q.front = gc
		q.back = gc
		return
	}
	q.back.next = gc
	q.back = gc
}

// Dequeue removes the front cell and splices its bit chain directly
// into dst, re-parenting the chain's first node onto dst's sentinel —
// a move, not a copy, matching spec.md §4.4. It reports false without
// modifying dst if the queue is empty.
func (q *GlobalQueue) Dequeue(dst *BitSequence) bool {
	if q.front == nil {
		return false
	}

	dst.Clear()

	front := q.front
	if front.sentinel.next != nil {
		dst.sentinel.next = front.sentinel.next
		dst.sentinel.next.prev = dst.sentinel
	}

	q.front = front.next
	if q.front == nil {
		q.back = nil
	}
	return true
}

// Cells returns up to n cells starting at the front, for debug dumps
// (spec.md §6).
func (q *GlobalQueue) Cells(n int) []*GlobalCell {
	cells := make([]*GlobalCell, 0, n)
	for c := q.front; c != nil && len(cells) < n; c = c.next {
		cells = append(cells, c)
	}
	return cells
}
