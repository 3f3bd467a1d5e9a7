// Package ival is the interval algebra consumed by package intervaltree.
//
// It is the "external collaborator" of the design: bound access, enclosure
// and connectedness predicates, and singleton construction, for one
// dimensional intervals over a comparable domain. Everything in package
// intervaltree treats a Range only through the methods below; it never
// inspects C's absolute representation.
//
// There exist thirteen basic relations between any two intervals in one
// dimension, see [Allen's Interval Algebra]. Encloses and IsConnected below
// are the two relations the tree's query drivers (in package intervaltree)
// actually need; the others fall out of comparing bounds directly and are
// not exposed here.
//
// [Allen's Interval Algebra]: https://www.ics.uci.edu/~alspaugh/cls/shr/allen.html
package ival

import "fmt"

// Kind distinguishes a bound that includes its endpoint (Closed) from one
// that excludes it (Open).
type Kind uint8

const (
	Open Kind = iota
	Closed
)

func (k Kind) String() string {
	if k == Closed {
		return "closed"
	}
	return "open"
}

// Point is the constraint on a Range's endpoint domain: it must know how to
// order itself against another value of the same type. net/netip.Addr
// already satisfies it; Value[C] below adapts any cmp.Ordered builtin.
type Point[C any] interface {
	Compare(other C) int
}

// Bound is either absent (−∞ for a lower bound, +∞ for an upper bound) or
// present with an endpoint and a Kind.
type Bound[C Point[C]] struct {
	endpoint C
	present  bool
	kind     Kind
}

// AbsentBound returns the absent bound (unbounded on that side).
func AbsentBound[C Point[C]]() Bound[C] {
	return Bound[C]{}
}

// NewBound returns a present bound at endpoint with the given kind.
func NewBound[C Point[C]](endpoint C, kind Kind) Bound[C] {
	return Bound[C]{endpoint: endpoint, present: true, kind: kind}
}

// Present reports whether the bound has a finite endpoint.
func (b Bound[C]) Present() bool { return b.present }

// Endpoint returns the bound's endpoint. Only meaningful if Present.
func (b Bound[C]) Endpoint() C { return b.endpoint }

// BoundKind returns the bound's kind. Only meaningful if Present.
func (b Bound[C]) BoundKind() Kind { return b.kind }

func (b Bound[C]) String() string {
	if !b.present {
		return "*"
	}
	return fmt.Sprintf("%v", b.endpoint)
}

// CompareLowerBounds orders two lower bounds: absent sorts before any
// present bound; among present bounds, compare the endpoint, then CLOSED
// before OPEN. This is the "Lower-bound order" primitive of spec.md §4.1,
// implemented purely in terms of bound access (Present/Endpoint/BoundKind).
func CompareLowerBounds[C Point[C]](a, b Bound[C]) int {
	return compareLower(a, b)
}

func compareLower[C Point[C]](a, b Bound[C]) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}
	if c := a.endpoint.Compare(b.endpoint); c != 0 {
		return c
	}
	return int(b.kind) - int(a.kind) // Closed(1) before Open(0): the larger kind sorts first
}

// CompareUpperBounds orders two upper bounds: any present bound sorts
// before absent; among present bounds, compare the endpoint, then OPEN
// before CLOSED. This is the "Upper-bound order" primitive of spec.md §4.1.
func CompareUpperBounds[C Point[C]](a, b Bound[C]) int {
	return compareUpper(a, b)
}

func compareUpper[C Point[C]](a, b Bound[C]) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return 1
	case !b.present:
		return -1
	}
	if c := a.endpoint.Compare(b.endpoint); c != 0 {
		return c
	}
	return int(a.kind) - int(b.kind) // Open(0) before Closed(1)
}

// CompareLowerToUpper is the cross order of spec.md §4.1: it answers
// whether lower bound does NOT lie strictly past upper bound, i.e. whether
// the two could still "close up" over some point. An absent bound on either
// side always closes up (unbounded sides never separate two intervals); a
// non-positive result means "lower does not exceed upper".
func CompareLowerToUpper[C Point[C]](lower, upper Bound[C]) int {
	return compareLowerToUpper(lower, upper)
}

func compareLowerToUpper[C Point[C]](lower, upper Bound[C]) int {
	if !lower.present || !upper.present {
		return -1
	}
	if c := lower.endpoint.Compare(upper.endpoint); c != 0 {
		return c
	}
	// equal endpoints: closes up (<=0) iff both bounds are closed, i.e. the
	// shared endpoint is included on both sides
	if lower.kind == Closed && upper.kind == Closed {
		return -1
	}
	return 1
}
