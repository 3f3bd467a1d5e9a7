package ival_test

import (
	"testing"

	"github.com/lowasser/intervaltree/ival"
)

func TestNewRejectsEmptyRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		lower, upper ival.Bound[intPoint]
	}{
		{"lower above upper", ival.NewBound(intPoint(3), ival.Closed), ival.NewBound(intPoint(2), ival.Closed)},
		{"open singleton", ival.NewBound(intPoint(2), ival.Open), ival.NewBound(intPoint(2), ival.Closed)},
		{"half-open singleton", ival.NewBound(intPoint(2), ival.Closed), ival.NewBound(intPoint(2), ival.Open)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ival.New(tt.lower, tt.upper); err == nil {
				t.Errorf("New(%v, %v) succeeded, want ErrEmptyRange", tt.lower, tt.upper)
			}
		})
	}
}

func TestSingletonIsClosedClosed(t *testing.T) {
	t.Parallel()

	s := ival.Singleton(intPoint(5))
	if !s.Contains(intPoint(5)) {
		t.Errorf("Singleton(5).Contains(5) = false, want true")
	}
	if s.Contains(intPoint(4)) || s.Contains(intPoint(6)) {
		t.Errorf("Singleton(5) contains a point other than 5")
	}
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	closedOpen := ival.ClosedOpen(intPoint(1), intPoint(4))

	tests := []struct {
		v    intPoint
		want bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	}
	for _, tt := range tests {
		if got := closedOpen.Contains(tt.v); got != tt.want {
			t.Errorf("[1,4).Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRangeEncloses(t *testing.T) {
	t.Parallel()

	outer := ival.Closed(intPoint(0), intPoint(10))
	inner := ival.Open(intPoint(2), intPoint(8))
	disjoint := ival.Closed(intPoint(20), intPoint(30))

	if !outer.Encloses(inner) {
		t.Errorf("[0,10].Encloses((2,8)) = false, want true")
	}
	if inner.Encloses(outer) {
		t.Errorf("(2,8).Encloses([0,10]) = true, want false")
	}
	if outer.Encloses(disjoint) {
		t.Errorf("[0,10].Encloses([20,30]) = true, want false")
	}
	if !outer.Encloses(outer) {
		t.Errorf("a range must enclose itself")
	}
}

func TestRangeIsConnected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    ival.Range[intPoint]
		connected bool
	}{
		{"overlapping", ival.Closed(intPoint(0), intPoint(5)), ival.Closed(intPoint(3), intPoint(8)), true},
		{"closed touch", ival.Closed(intPoint(0), intPoint(5)), ival.Closed(intPoint(5), intPoint(8)), true},
		{"open touch does not connect", ival.ClosedOpen(intPoint(0), intPoint(5)), ival.OpenClosed(intPoint(5), intPoint(8)), false},
		{"gap", ival.Closed(intPoint(0), intPoint(5)), ival.Closed(intPoint(6), intPoint(8)), false},
		{"unbounded both sides always connect", ival.All[intPoint](), ival.Closed(intPoint(100), intPoint(200)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.IsConnected(tt.b); got != tt.connected {
				t.Errorf("%v.IsConnected(%v) = %v, want %v", tt.a, tt.b, got, tt.connected)
			}
			if got := tt.b.IsConnected(tt.a); got != tt.connected {
				t.Errorf("IsConnected must be symmetric: %v.IsConnected(%v) = %v, want %v", tt.b, tt.a, got, tt.connected)
			}
		})
	}
}
