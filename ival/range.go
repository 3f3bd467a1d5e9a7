package ival

import (
	"cmp"
	"fmt"
)

// Range is a non-empty, well-formed interval over C: lower and upper bounds,
// each possibly absent. If both endpoints are present, lower <= upper, and
// if they are equal both bounds must be closed (a degenerate [v,v] point);
// any other equal-endpoint combination describes the empty interval and is
// rejected by New.
type Range[C Point[C]] struct {
	lower, upper Bound[C]
}

// ErrEmptyRange is returned by New when the requested bounds describe an
// empty interval.
type ErrEmptyRange struct {
	Lower, Upper fmt.Stringer
}

func (e ErrEmptyRange) Error() string {
	return fmt.Sprintf("ival: empty range: lower=%v upper=%v", e.Lower, e.Upper)
}

// New builds a Range from explicit bounds, rejecting empty ranges.
func New[C Point[C]](lower, upper Bound[C]) (Range[C], error) {
	if lower.present && upper.present {
		c := lower.endpoint.Compare(upper.endpoint)
		if c > 0 || (c == 0 && !(lower.kind == Closed && upper.kind == Closed)) {
			return Range[C]{}, ErrEmptyRange{Lower: lower, Upper: upper}
		}
	}
	return Range[C]{lower: lower, upper: upper}, nil
}

// Closed returns the range [lo, hi].
func Closed[C Point[C]](lo, hi C) Range[C] {
	r, err := New(NewBound(lo, Closed), NewBound(hi, Closed))
	if err != nil {
		panic(err)
	}
	return r
}

// Open returns the range (lo, hi).
func Open[C Point[C]](lo, hi C) Range[C] {
	r, err := New(NewBound(lo, Open), NewBound(hi, Open))
	if err != nil {
		panic(err)
	}
	return r
}

// ClosedOpen returns the range [lo, hi).
func ClosedOpen[C Point[C]](lo, hi C) Range[C] {
	r, err := New(NewBound(lo, Closed), NewBound(hi, Open))
	if err != nil {
		panic(err)
	}
	return r
}

// OpenClosed returns the range (lo, hi].
func OpenClosed[C Point[C]](lo, hi C) Range[C] {
	r, err := New(NewBound(lo, Open), NewBound(hi, Closed))
	if err != nil {
		panic(err)
	}
	return r
}

// AtLeast returns the range [lo, +inf).
func AtLeast[C Point[C]](lo C) Range[C] {
	return Range[C]{lower: NewBound(lo, Closed), upper: AbsentBound[C]()}
}

// GreaterThan returns the range (lo, +inf).
func GreaterThan[C Point[C]](lo C) Range[C] {
	return Range[C]{lower: NewBound(lo, Open), upper: AbsentBound[C]()}
}

// AtMost returns the range (-inf, hi].
func AtMost[C Point[C]](hi C) Range[C] {
	return Range[C]{lower: AbsentBound[C](), upper: NewBound(hi, Closed)}
}

// LessThan returns the range (-inf, hi).
func LessThan[C Point[C]](hi C) Range[C] {
	return Range[C]{lower: AbsentBound[C](), upper: NewBound(hi, Open)}
}

// All returns the unbounded range (-inf, +inf).
func All[C Point[C]]() Range[C] {
	return Range[C]{lower: AbsentBound[C](), upper: AbsentBound[C]()}
}

// Singleton returns the degenerate range [v, v]. This is the "singleton(v)"
// constructor of spec.md §6. Package intervaltree does not call it: its
// containing(v) query works against the point v directly.
func Singleton[C Point[C]](v C) Range[C] {
	return Range[C]{lower: NewBound(v, Closed), upper: NewBound(v, Closed)}
}

// HasLowerBound, HasUpperBound, LowerEndpoint, UpperEndpoint, LowerKind and
// UpperKind together form the bound-access half of the algebra contract in
// spec.md §6.
func (r Range[C]) HasLowerBound() bool { return r.lower.present }
func (r Range[C]) HasUpperBound() bool { return r.upper.present }
func (r Range[C]) LowerEndpoint() C    { return r.lower.endpoint }
func (r Range[C]) UpperEndpoint() C    { return r.upper.endpoint }
func (r Range[C]) LowerKind() Kind     { return r.lower.kind }
func (r Range[C]) UpperKind() Kind     { return r.upper.kind }
func (r Range[C]) LowerBound() Bound[C] { return r.lower }
func (r Range[C]) UpperBound() Bound[C] { return r.upper }

// Contains reports whether v lies within r.
func (r Range[C]) Contains(v C) bool {
	if r.lower.present {
		c := r.lower.endpoint.Compare(v)
		if c > 0 || (c == 0 && r.lower.kind == Open) {
			return false
		}
	}
	if r.upper.present {
		c := r.upper.endpoint.Compare(v)
		if c < 0 || (c == 0 && r.upper.kind == Open) {
			return false
		}
	}
	return true
}

// Encloses reports whether every point of other is in r, i.e. r's lower
// bound is <= other's lower bound and r's upper bound is >= other's upper
// bound.
func (r Range[C]) Encloses(other Range[C]) bool {
	return CompareLowerBounds(r.lower, other.lower) <= 0 && CompareUpperBounds(r.upper, other.upper) >= 0
}

// IsConnected reports whether r and other share at least one point, or
// abut without a gap on a shared boundary (closed/closed touch). A
// closed/open or open/open touch at the same endpoint is NOT connected: the
// two closures don't actually meet at a shared point. This is the algebra's
// definition used verbatim by the query drivers; see spec.md §9's open
// question for the rationale — no separate non-empty-intersection helper is
// used, only this predicate.
func (r Range[C]) IsConnected(other Range[C]) bool {
	return CompareLowerToUpper(r.lower, other.upper) <= 0 && CompareLowerToUpper(other.lower, r.upper) <= 0
}

// Equal reports whether r and other describe the same interval.
func (r Range[C]) Equal(other Range[C]) bool {
	return CompareLowerBounds(r.lower, other.lower) == 0 && CompareUpperBounds(r.upper, other.upper) == 0
}

func (r Range[C]) String() string {
	lb := "["
	if r.lower.kind == Open {
		lb = "("
	}
	ub := "]"
	if r.upper.kind == Open {
		ub = ")"
	}
	lo, hi := "-inf", "+inf"
	if r.lower.present {
		lo = fmt.Sprintf("%v", r.lower.endpoint)
	}
	if r.upper.present {
		hi = fmt.Sprintf("%v", r.upper.endpoint)
	}
	return lb + lo + ".." + hi + ub
}

// Value adapts any cmp.Ordered builtin type to the Point constraint, so
// plain int/string/float domains can be used as Range endpoints without
// writing a Compare method by hand.
type Value[C cmp.Ordered] C

// Compare implements Point[Value[C]].
func (v Value[C]) Compare(other Value[C]) int {
	return cmp.Compare(C(v), C(other))
}

func (v Value[C]) String() string {
	return fmt.Sprintf("%v", C(v))
}
