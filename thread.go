package intervaltree

import "github.com/lowasser/intervaltree/ival"

// thread is the sentinel-based circular doubly-linked order list
// (spec.md §3 "Order thread", §4.3). The sentinel header carries no
// interval and no priority; header.next is the minimum node, header.prev is
// the maximum. Splicing happens only when nodes are created or destroyed;
// rotations never touch it (spec.md §9 "Thread vs tree independence").
type thread[T Interval[T, C], C ival.Point[C]] struct {
	header node[T, C]
}

func newThread[T Interval[T, C], C ival.Point[C]]() *thread[T, C] {
	th := &thread[T, C]{}
	th.header.next = &th.header
	th.header.prev = &th.header
	return th
}

// link sets a.next = b and b.prev = a.
func link[T Interval[T, C], C ival.Point[C]](a, b *node[T, C]) {
	a.next = b
	b.prev = a
}

// spliceBefore inserts n immediately before mark in the thread.
func (th *thread[T, C]) spliceBefore(mark, n *node[T, C]) {
	link(mark.prev, n)
	link(n, mark)
}

// spliceAfter inserts n immediately after mark in the thread.
func (th *thread[T, C]) spliceAfter(mark, n *node[T, C]) {
	link(n, mark.next)
	link(mark, n)
}

// unlink removes n from the thread. n's own prev/next are left dangling;
// the caller must not dereference them afterwards.
func (th *thread[T, C]) unlink(n *node[T, C]) {
	link(n.prev, n.next)
}

// min returns the minimum node in canonical order, or nil if empty.
func (th *thread[T, C]) min() *node[T, C] {
	if th.header.next == &th.header {
		return nil
	}
	return th.header.next
}

// max returns the maximum node in canonical order, or nil if empty.
func (th *thread[T, C]) max() *node[T, C] {
	if th.header.prev == &th.header {
		return nil
	}
	return th.header.prev
}

// isSentinel reports whether n is the thread's header link.
func (th *thread[T, C]) isSentinel(n *node[T, C]) bool {
	return n == &th.header
}
