package intervaltree

import (
	"iter"

	"github.com/lowasser/intervaltree/ival"
)

// Tree is an ordered, mutable collection of intervals over a comparable
// domain C, augmented for the four spatial queries of spec.md §4.4. A zero
// Tree is not usable; construct one with New. A nil *Tree reads as empty
// through Size, Contains and All; its other methods need a Tree from New.
// A Tree is not safe for
// concurrent use: simultaneous mutation (even of distinct items) from
// multiple goroutines must be synchronized by the caller.
type Tree[T Interval[T, C], C ival.Point[C]] struct {
	root     *node[T, C]
	thread   *thread[T, C]
	size     int
	modCount uint64
}

// New returns an empty Tree.
func New[T Interval[T, C], C ival.Point[C]]() *Tree[T, C] {
	return &Tree[T, C]{thread: newThread[T, C]()}
}

// Size returns the number of intervals currently stored.
func (t *Tree[T, C]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Add inserts item, returning false if an interval comparing equal under the
// canonical order (spec.md §3) is already present.
func (t *Tree[T, C]) Add(item T) bool {
	if t.root == nil {
		m := newNode[T, C](item)
		t.thread.spliceAfter(&t.thread.header, m)
		t.root = m
		t.size++
		t.modCount++
		return true
	}
	newRoot, modified := t.root.insert(item, t.thread)
	if !modified {
		return false
	}
	t.root = newRoot
	t.size++
	t.modCount++
	return true
}

// Remove deletes the interval comparing equal to item, if any, returning
// whether one was found.
func (t *Tree[T, C]) Remove(item T) bool {
	newRoot, modified := t.root.remove(item, t.thread)
	if !modified {
		return false
	}
	t.root = newRoot
	t.size--
	t.modCount++
	return true
}

// Contains reports whether an interval comparing equal to item is present.
func (t *Tree[T, C]) Contains(item T) bool {
	if t == nil {
		return false
	}
	return t.root.find(item) != nil
}

// Clear removes every interval.
func (t *Tree[T, C]) Clear() {
	t.root = nil
	t.thread = newThread[T, C]()
	t.size = 0
	t.modCount++
}

// All ranges over every stored interval in canonical order (spec.md §4.3).
// Unlike Iterator, it offers no removal and no ConcurrentModification
// detection; mutating the tree from within the loop body is undefined.
func (t *Tree[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		for n := t.thread.min(); n != nil && !t.thread.isSentinel(n); n = n.next {
			if !yield(n.interval) {
				return
			}
		}
	}
}

// Connected returns every stored interval sharing a point with q, or abutting
// it without a gap (spec.md §4.4 "connected").
func (t *Tree[T, C]) Connected(q T) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.connected(q, yield)
	}
}

// EnclosedBy returns every stored interval that q fully contains (spec.md
// §4.4 "enclosedBy").
func (t *Tree[T, C]) EnclosedBy(q T) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.enclosedBy(q, yield)
	}
}

// Enclosing returns every stored interval that fully contains q (spec.md
// §4.4 "enclosing").
func (t *Tree[T, C]) Enclosing(q T) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.enclosing(q, yield)
	}
}

// Containing returns every stored interval containing the point v,
// equivalent to Enclosing(singleton(v)) (spec.md §4.4 "containing").
func (t *Tree[T, C]) Containing(v C) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.containing(v, yield)
	}
}

// Iterator returns a fail-fast iterator over every stored interval in
// canonical order, snapshotting the tree's modification count (spec.md
// §4.5). Any structural change to the tree other than the iterator's own
// Remove invalidates it.
func (t *Tree[T, C]) Iterator() *Iterator[T, C] {
	next := t.thread.min()
	if next != nil && t.thread.isSentinel(next) {
		next = nil
	}
	return &Iterator[T, C]{tree: t, modCount: t.modCount, next: next}
}

// Iterator walks a Tree's contents in canonical order, supporting
// ConcurrentModificationError detection and iterator-driven removal
// (spec.md §4.5, §7).
type Iterator[T Interval[T, C], C ival.Point[C]] struct {
	tree     *Tree[T, C]
	modCount uint64
	next     *node[T, C]
	last     *node[T, C]
}

// HasNext reports whether Next would return another element.
func (it *Iterator[T, C]) HasNext() bool {
	return it.next != nil
}

// Next returns the next element in canonical order. It returns
// ConcurrentModificationError if the tree was structurally modified since
// the iterator was created (other than by this iterator's own Remove), and
// ErrNoMoreElements once exhausted.
func (it *Iterator[T, C]) Next() (T, error) {
	var zero T
	if it.modCount != it.tree.modCount {
		return zero, ConcurrentModificationError{}
	}
	if it.next == nil {
		return zero, ErrNoMoreElements
	}
	n := it.next
	it.last = n
	nxt := n.next
	if it.tree.thread.isSentinel(nxt) {
		it.next = nil
	} else {
		it.next = nxt
	}
	return n.interval, nil
}

// Remove deletes the interval most recently returned by Next. It returns
// ErrIteratorRemoveWithoutNext if called before any Next, or twice in a row
// without an intervening Next. Unlike any other mutation, a successful
// Remove does not invalidate this iterator.
func (it *Iterator[T, C]) Remove() error {
	if it.modCount != it.tree.modCount {
		return ConcurrentModificationError{}
	}
	if it.last == nil {
		return ErrIteratorRemoveWithoutNext
	}
	item := it.last.interval
	it.tree.root, _ = it.tree.root.remove(item, it.tree.thread)
	it.tree.size--
	it.tree.modCount++
	it.modCount = it.tree.modCount
	it.last = nil
	return nil
}
