package intervaltree

import (
	"math/rand"

	"github.com/lowasser/intervaltree/ival"
)

// prioritySource is the single process-wide pseudorandom generator that
// supplies node priorities (spec.md §5). The seed is fixed so that a given
// sequence of insertions always produces the same tree shape, which keeps
// tests reproducible. There is no thread-safety contract on this source: the
// tree it feeds is documented as not safe for concurrent mutation either.
var prioritySource = rand.New(rand.NewSource(0xC0FFEE))

// node is the treap's recursive data structure. left and right are owning
// pointers to child subtrees; prev and next are non-owning links into the
// order thread and never extend a node's lifetime on their own.
type node[T Interval[T, C], C ival.Point[C]] struct {
	interval T
	priority int32

	// maxUpper is the maximum upper bound (under the upper-bound order)
	// across this node's entire subtree, recomputed after every structural
	// change. Only the bound itself is kept, not a pointer to the node that
	// realizes it: the query drivers only ever need to compare against it.
	maxUpper ival.Bound[C]

	left, right *node[T, C]
	prev, next  *node[T, C]
}

// newNode creates a node with a fresh priority and its augmentation already
// computed for a soon-to-be leaf (no children yet).
func newNode[T Interval[T, C], C ival.Point[C]](item T) *node[T, C] {
	n := &node[T, C]{
		interval: item,
		priority: prioritySource.Int31(),
	}
	n.recalc()
	return n
}

// recalc recomputes maxUpper from this node's own interval and its
// children's maxUpper. Must be called after any change to left, right, or a
// child's augmentation (spec.md §9 "Augmentation maintenance").
func (n *node[T, C]) recalc() {
	max := n.interval.UpperBound()
	if n.left != nil && ival.CompareUpperBounds(n.left.maxUpper, max) > 0 {
		max = n.left.maxUpper
	}
	if n.right != nil && ival.CompareUpperBounds(n.right.maxUpper, max) > 0 {
		max = n.right.maxUpper
	}
	n.maxUpper = max
}
