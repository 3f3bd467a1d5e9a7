package intervaltree

import "github.com/lowasser/intervaltree/ival"

// The four drivers below are depth-first subtree walks pruned by the
// maxUpper augmentation and the canonical search-tree order, in the manner
// of the classic augmented interval-tree overlap query (spec.md §4.4). Each
// takes an iter.Seq-style yield callback and stops early (returning false)
// the moment yield does, so Tree's public methods can build lazy iter.Seq
// values directly on top of them without buffering results.

// connected walks every node whose interval shares a point with q, or abuts
// it without a gap, i.e. n.interval.IsConnected(q).
func (n *node[T, C]) connected(q T, yield func(T) bool) bool {
	if n == nil || ival.CompareLowerToUpper(q.LowerBound(), n.maxUpper) > 0 {
		// Nothing in this subtree reaches far enough to meet q's lower bound.
		return true
	}
	if n.left != nil {
		if !n.left.connected(q, yield) {
			return false
		}
	}
	if n.interval.IsConnected(q) {
		if !yield(n.interval) {
			return false
		}
	}
	if ival.CompareLowerToUpper(n.interval.LowerBound(), q.UpperBound()) <= 0 && n.right != nil {
		if !n.right.connected(q, yield) {
			return false
		}
	}
	return true
}

// enclosedBy walks every node whose interval q fully contains, i.e.
// q.Encloses(n.interval).
func (n *node[T, C]) enclosedBy(q T, yield func(T) bool) bool {
	if n == nil || ival.CompareLowerToUpper(q.LowerBound(), n.maxUpper) > 0 {
		// Nothing in this subtree reaches far enough to meet q's lower bound.
		return true
	}
	if compareLower[T, C](n.interval, q) >= 0 && n.left != nil {
		if !n.left.enclosedBy(q, yield) {
			return false
		}
	}
	if q.Encloses(n.interval) {
		if !yield(n.interval) {
			return false
		}
	}
	if ival.CompareLowerToUpper(n.interval.LowerBound(), q.UpperBound()) <= 0 && n.right != nil {
		if !n.right.enclosedBy(q, yield) {
			return false
		}
	}
	return true
}

// enclosing walks every node whose interval fully contains q, i.e.
// n.interval.Encloses(q).
func (n *node[T, C]) enclosing(q T, yield func(T) bool) bool {
	if n == nil || ival.CompareUpperBounds(n.maxUpper, q.UpperBound()) < 0 {
		// No interval in this subtree reaches far enough to enclose q.
		return true
	}
	if n.left != nil {
		if !n.left.enclosing(q, yield) {
			return false
		}
	}
	if n.interval.Encloses(q) {
		if !yield(n.interval) {
			return false
		}
	}
	if compareLower[T, C](n.interval, q) <= 0 && n.right != nil {
		if !n.right.enclosing(q, yield) {
			return false
		}
	}
	return true
}

// containing walks every node whose interval contains the point v. This is
// enclosing(singleton(v)) worked out directly against v rather than via a
// constructed T, since T's concrete shape is unknown to this package.
func (n *node[T, C]) containing(v C, yield func(T) bool) bool {
	if n == nil {
		return true
	}
	vBound := ival.NewBound(v, ival.Closed)
	if ival.CompareUpperBounds(n.maxUpper, vBound) < 0 {
		return true
	}
	if n.left != nil {
		if !n.left.containing(v, yield) {
			return false
		}
	}
	if n.interval.Contains(v) {
		if !yield(n.interval) {
			return false
		}
	}
	if ival.CompareLowerToUpper(n.interval.LowerBound(), vBound) <= 0 && n.right != nil {
		if !n.right.containing(v, yield) {
			return false
		}
	}
	return true
}
