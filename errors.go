package intervaltree

import "errors"

// ErrNoMoreElements is returned by Iterator.Next once the iterator is
// exhausted.
var ErrNoMoreElements = errors.New("intervaltree: no more elements")

// ErrIteratorRemoveWithoutNext is returned by Iterator.Remove when called
// before Next, or twice in a row without an intervening Next.
var ErrIteratorRemoveWithoutNext = errors.New("intervaltree: Remove called without a preceding Next")

// ConcurrentModificationError is returned by Iterator.Next and
// Iterator.Remove when the tree was structurally modified by something
// other than the iterator's own Remove since the iterator was created.
type ConcurrentModificationError struct{}

func (ConcurrentModificationError) Error() string {
	return "intervaltree: tree was modified during iteration"
}
