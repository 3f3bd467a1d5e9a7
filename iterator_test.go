package intervaltree_test

import (
	"errors"
	"testing"

	"github.com/lowasser/intervaltree"
)

func TestIteratorWalksCanonicalOrder(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	want := []testInterval{closed(0, 2), closed(3, 3), closed(5, 9)}
	tree.Add(want[2])
	tree.Add(want[0])
	tree.Add(want[1])

	it := tree.Iterator()
	var got []testInterval
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next() returned %v", err)
		}
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("iterator produced %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Next() #%d = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := it.Next(); !errors.Is(err, intervaltree.ErrNoMoreElements) {
		t.Errorf("Next() after exhaustion = %v, want ErrNoMoreElements", err)
	}
}

func TestIteratorRemoveWithoutNext(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(0, 1))

	it := tree.Iterator()
	if err := it.Remove(); !errors.Is(err, intervaltree.ErrIteratorRemoveWithoutNext) {
		t.Errorf("Remove() before Next() = %v, want ErrIteratorRemoveWithoutNext", err)
	}

	it.Next() //nolint:errcheck
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove() after Next() = %v, want nil", err)
	}
	if err := it.Remove(); !errors.Is(err, intervaltree.ErrIteratorRemoveWithoutNext) {
		t.Errorf("second consecutive Remove() = %v, want ErrIteratorRemoveWithoutNext", err)
	}
}

func TestIteratorRemoveDeletesTheLastReturnedElement(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(0, 1))
	tree.Add(closed(2, 3))
	tree.Add(closed(4, 5))

	it := tree.Iterator()
	for it.HasNext() {
		v, _ := it.Next()
		if v.Equal(closed(2, 3)) {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove() = %v, want nil", err)
			}
		}
	}

	if tree.Contains(closed(2, 3)) {
		t.Errorf("tree still contains the removed interval")
	}
	if tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tree.Size())
	}
}

func TestIteratorOwnRemoveDoesNotInvalidateItself(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(0, 1))
	tree.Add(closed(2, 3))

	it := tree.Iterator()
	it.Next()          //nolint:errcheck
	it.Remove()         //nolint:errcheck
	if _, err := it.Next(); err != nil {
		t.Errorf("Next() after the iterator's own Remove() = %v, want nil", err)
	}
}

func TestExternalMutationInvalidatesIterator(t *testing.T) {
	t.Parallel()

	tree := newIntTree()
	tree.Add(closed(0, 1))
	tree.Add(closed(2, 3))

	it := tree.Iterator()
	tree.Add(closed(4, 5))

	if _, err := it.Next(); !errors.As(err, new(intervaltree.ConcurrentModificationError)) {
		t.Errorf("Next() after external mutation = %v, want ConcurrentModificationError", err)
	}
	if err := it.Remove(); !errors.As(err, new(intervaltree.ConcurrentModificationError)) {
		t.Errorf("Remove() after external mutation = %v, want ConcurrentModificationError", err)
	}
}
