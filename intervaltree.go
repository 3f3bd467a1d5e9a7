// Package intervaltree implements a mutable, ordered collection of one
// dimensional intervals, augmented with a randomized balanced search tree
// (a treap) so that four spatial queries — connected, enclosedBy, enclosing
// and containing — run in O(log n + k) expected time, k the result size.
//
// The implementation is based on treaps, augmented for interval lookups,
// in the manner of [github.com/gaissmai/interval]: a BST keyed by canonical
// interval order, balanced by randomized heap priorities, with every node
// carrying the maximum upper bound across its subtree to prune query
// traversals. Unlike that package, this tree is mutable in place (no
// copy-on-write persistence) and threads a doubly-linked order list through
// its nodes so iteration and iterator-driven removal don't need to re-walk
// the tree.
//
// The interval algebra itself — bound access, enclosure, connectedness,
// singleton construction — is not part of this package; it is consumed
// abstractly through the Interval constraint below and provided concretely
// by package github.com/lowasser/intervaltree/ival.
package intervaltree

import "github.com/lowasser/intervaltree/ival"

// Interval is the constraint every item stored in a Tree must satisfy.
// package ival's Range[C] satisfies this for any comparable domain C.
//
// LowerBound and UpperBound give bound access only (spec.md §4.1): the
// ordering primitives in this package (compareLower, compareUpper,
// crossOrder) are built exclusively from these two accessors and never
// inspect C's representation directly. Encloses, IsConnected and Contains
// are consumed verbatim from the algebra for query emission decisions
// (spec.md §4.4) and nowhere else.
type Interval[T any, C ival.Point[C]] interface {
	// LowerBound returns the receiver's lower bound.
	LowerBound() ival.Bound[C]

	// UpperBound returns the receiver's upper bound.
	UpperBound() ival.Bound[C]

	// Encloses reports whether the receiver contains every point of other.
	Encloses(other T) bool

	// IsConnected reports whether the receiver shares a point with other,
	// or abuts it without a gap on a shared boundary kind.
	IsConnected(other T) bool

	// Contains reports whether the receiver contains point v.
	Contains(v C) bool
}

// compareLower is the "Lower-bound order" primitive (spec.md §4.1 step 1).
func compareLower[T Interval[T, C], C ival.Point[C]](a, b T) int {
	return ival.CompareLowerBounds(a.LowerBound(), b.LowerBound())
}

// compareUpper is the "Upper-bound order" primitive (spec.md §4.1 step 2).
func compareUpper[T Interval[T, C], C ival.Point[C]](a, b T) int {
	return ival.CompareUpperBounds(a.UpperBound(), b.UpperBound())
}

// crossOrder is the "Cross order" primitive (spec.md §4.1): compares a's
// lower bound against b's upper bound.
func crossOrder[T Interval[T, C], C ival.Point[C]](a, b T) int {
	return ival.CompareLowerToUpper(a.LowerBound(), b.UpperBound())
}

// compare is the canonical interval order ≼ used as the BST search key
// (spec.md §3): compare lower bounds first; if equal, compare upper bounds.
func compare[T Interval[T, C], C ival.Point[C]](a, b T) int {
	if c := compareLower[T, C](a, b); c != 0 {
		return c
	}
	return compareUpper[T, C](a, b)
}
