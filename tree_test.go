package intervaltree_test

import (
	"testing"

	"github.com/lowasser/intervaltree"
	"github.com/lowasser/intervaltree/ival"
)

type testInterval = ival.Range[ival.Value[int]]

func closed(lo, hi int) testInterval {
	return ival.Closed(ival.Value[int](lo), ival.Value[int](hi))
}

func newIntTree() *intervaltree.Tree[testInterval, ival.Value[int]] {
	return intervaltree.New[testInterval, ival.Value[int]]()
}

func TestTreeZeroValue(t *testing.T) {
	t.Parallel()

	var tree *intervaltree.Tree[testInterval, ival.Value[int]]
	if tree.Size() != 0 {
		t.Errorf("zero Tree.Size() = %d, want 0", tree.Size())
	}
	if tree.Contains(closed(0, 1)) {
		t.Errorf("zero Tree.Contains(...) = true, want false")
	}
	for range tree.All() {
		t.Errorf("zero Tree.All() yielded an element")
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	if !tree.Add(closed(1, 5)) {
		t.Fatalf("first Add returned false")
	}
	if tree.Add(closed(1, 5)) {
		t.Errorf("second Add of the same interval returned true, want false")
	}
	if tree.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tree.Size())
	}
}

func TestAddDistinguishesEqualLowerBounds(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(1, 5))
	if !tree.Add(closed(1, 9)) {
		t.Errorf("Add of a distinct interval sharing a lower bound returned false")
	}
	if tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tree.Size())
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(1, 5))
	tree.Add(closed(2, 8))

	if !tree.Remove(closed(1, 5)) {
		t.Fatalf("Remove of a present interval returned false")
	}
	if tree.Remove(closed(1, 5)) {
		t.Errorf("Remove of an absent interval returned true")
	}
	if tree.Contains(closed(1, 5)) {
		t.Errorf("Contains still true after Remove")
	}
	if tree.Size() != 1 {
		t.Errorf("Size() = %d, want 1", tree.Size())
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	for i := 0; i < 10; i++ {
		tree.Add(closed(i, i+1))
	}
	tree.Clear()
	if tree.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", tree.Size())
	}
	for range tree.All() {
		t.Errorf("All() yielded an element after Clear")
	}
	// A cleared tree must still accept new insertions.
	if !tree.Add(closed(0, 1)) {
		t.Errorf("Add after Clear returned false")
	}
}

func TestAllYieldsCanonicalOrder(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	items := []testInterval{closed(5, 9), closed(0, 2), closed(0, 9), closed(3, 3)}
	for _, it := range items {
		tree.Add(it)
	}

	var got []testInterval
	for it := range tree.All() {
		got = append(got, it)
	}

	want := []testInterval{closed(0, 2), closed(0, 9), closed(3, 3), closed(5, 9)}
	if len(got) != len(want) {
		t.Fatalf("All() produced %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
