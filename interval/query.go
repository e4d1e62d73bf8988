// SPDX-License-Identifier: MIT

package interval

import "iter"

// FindIntersection returns the value of some stored interval overlapping
// [lo, hi]. It follows a single root-to-leaf path: at each node it goes left
// only when the left subtree's max hi reaches lo, otherwise right. Which of
// several overlapping intervals is returned depends on the tree shape.
func (t *Tree[K, V]) FindIntersection(lo, hi K) (V, bool) {
	var zero V
	if lo > hi {
		return zero, false
	}
	for n := t.root; n != nil; {
		if overlaps(n.lo, n.hi, lo, hi) {
			return n.value, true
		}
		if n.left != nil && n.left.maxHi >= lo {
			n = n.left
		} else {
			n = n.right
		}
	}

	return zero, false
}

// FindIntersections returns the values of every stored interval overlapping
// [lo, hi], in key order. The result is empty, never nil.
func (t *Tree[K, V]) FindIntersections(lo, hi K) []V {
	out := make([]V, 0)
	if lo > hi {
		return out
	}
	t.root.overlapping(lo, hi, func(n *node[K, V]) {
		out = append(out, n.value)
	})

	return out
}

// Intersecting is FindIntersections returning the stored intervals together
// with their values.
func (t *Tree[K, V]) Intersecting(lo, hi K) []Entry[K, V] {
	out := make([]Entry[K, V], 0)
	if lo > hi {
		return out
	}
	t.root.overlapping(lo, hi, func(n *node[K, V]) {
		out = append(out, n.entry())
	})

	return out
}

// overlapping visits the overlapping nodes below n in key order. The left
// subtree is skipped when its max hi falls short of lo, and the right
// subtree when n.lo already lies past hi.
func (n *node[K, V]) overlapping(lo, hi K, visit func(*node[K, V])) {
	if n == nil {
		return
	}
	if n.left != nil && n.left.maxHi >= lo {
		n.left.overlapping(lo, hi, visit)
	}
	if n.lo > hi {
		return
	}
	if n.hi >= lo {
		visit(n)
	}
	if n.right != nil && n.right.maxHi >= lo {
		n.right.overlapping(lo, hi, visit)
	}
}

// Ascend calls fn for every entry in key order until fn returns false.
func (t *Tree[K, V]) Ascend(fn func(Entry[K, V]) bool) {
	t.root.ascend(func(n *node[K, V]) bool {
		return fn(n.entry())
	})
}

// All returns an iterator over every stored interval and its value in key
// order.
func (t *Tree[K, V]) All() iter.Seq2[Interval[K], V] {
	return func(yield func(Interval[K], V) bool) {
		t.root.ascend(func(n *node[K, V]) bool {
			return yield(Interval[K]{Lo: n.lo, Hi: n.hi}, n.value)
		})
	}
}

func (n *node[K, V]) ascend(fn func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return n.left.ascend(fn) && fn(n) && n.right.ascend(fn)
}
