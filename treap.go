package intervaltree

import "github.com/lowasser/intervaltree/ival"

// insert recursively inserts item into the subtree rooted at n (which must
// be non-nil; the empty-tree case is handled by Tree.Add), returning the new
// subtree root and whether a node was created. Matches spec.md §4.2.
func (n *node[T, C]) insert(item T, th *thread[T, C]) (*node[T, C], bool) {
	c := compare[T, C](item, n.interval)

	switch {
	case c == 0:
		return n, false

	case c < 0:
		if n.left == nil {
			m := newNode[T, C](item)
			th.spliceBefore(n, m)
			n.left = m
		} else {
			newLeft, modified := n.left.insert(item, th)
			if !modified {
				return n, false
			}
			n.left = newLeft
		}
		n.recalc()
		if n.left.priority < n.priority {
			n = n.rotateRight()
		}
		return n, true

	default: // c > 0
		if n.right == nil {
			m := newNode[T, C](item)
			th.spliceAfter(n, m)
			n.right = m
		} else {
			newRight, modified := n.right.insert(item, th)
			if !modified {
				return n, false
			}
			n.right = newRight
		}
		n.recalc()
		if n.right.priority < n.priority {
			n = n.rotateLeft()
		}
		return n, true
	}
}

// remove recursively removes item from the subtree rooted at n (n may be
// nil), returning the new subtree root and whether anything was removed.
// Matches spec.md §4.2.
func (n *node[T, C]) remove(item T, th *thread[T, C]) (*node[T, C], bool) {
	if n == nil {
		return nil, false
	}

	c := compare[T, C](item, n.interval)
	switch {
	case c < 0:
		newLeft, modified := n.left.remove(item, th)
		if !modified {
			return n, false
		}
		n.left = newLeft
		n.recalc()
		return n, true

	case c > 0:
		newRight, modified := n.right.remove(item, th)
		if !modified {
			return n, false
		}
		n.right = newRight
		n.recalc()
		return n, true

	default:
		th.unlink(n)
		return merge[T, C](n.left, n.right), true
	}
}

// merge combines two treaps whose keys are entirely disjoint and ordered
// (every key in l is less than every key in r), preserving the min-heap
// property: whichever root has the smaller priority stays on top, and the
// other subtree is merged into its adjacent side (spec.md §4.2).
func merge[T Interval[T, C], C ival.Point[C]](l, r *node[T, C]) *node[T, C] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.priority < r.priority:
		l.right = merge[T, C](l.right, r)
		l.recalc()
		return l
	default:
		r.left = merge[T, C](l, r.left)
		r.recalc()
		return r
	}
}

// rotateRight promotes n's left child to replace n, demoting n to be the
// promoted node's right child. Used when n.left.priority < n.priority.
//
//	     n                 l
//	    / \               / \
//	   l   c     --->    a   n
//	  / \                   / \
//	 a   b                 b   c
func (n *node[T, C]) rotateRight() *node[T, C] {
	l := n.left
	n.left = l.right
	l.right = n
	n.recalc() // demoted node first
	l.recalc() // then the new subtree root
	return l
}

// rotateLeft promotes n's right child to replace n, demoting n to be the
// promoted node's left child. Used when n.right.priority < n.priority.
//
//	   n                    r
//	  / \                  / \
//	 a   r       --->     n   c
//	    / \               / \
//	   b   c             a   b
func (n *node[T, C]) rotateLeft() *node[T, C] {
	r := n.right
	n.right = r.left
	r.left = n
	n.recalc() // demoted node first
	r.recalc() // then the new subtree root
	return r
}

// find returns the node whose interval is ≼-equal to item, or nil.
func (n *node[T, C]) find(item T) *node[T, C] {
	for n != nil {
		c := compare[T, C](item, n.interval)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
