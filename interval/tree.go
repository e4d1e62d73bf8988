// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"fmt"
)

// Tree is an augmented left-leaning red-black tree keyed by closed intervals.
// The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// New returns an empty Tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of stored intervals.
func (t *Tree[K, V]) Len() int {
	return t.root.len()
}

// IsEmpty reports whether the tree stores no intervals.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Put stores value under [lo, hi], overwriting the value of an existing
// identical key without restructuring the tree.
// Returns ErrInvertedRange if lo > hi.
func (t *Tree[K, V]) Put(lo, hi K, value V) error {
	if lo > hi {
		return fmt.Errorf("%w: [%v, %v]", ErrInvertedRange, lo, hi)
	}
	t.root = t.root.insert(lo, hi, value)
	t.root.red = false

	return nil
}

// Get returns the value stored under exactly [lo, hi].
func (t *Tree[K, V]) Get(lo, hi K) (V, bool) {
	for n := t.root; n != nil; {
		switch c := compareKey(lo, hi, n.lo, n.hi); {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether [lo, hi] is stored.
func (t *Tree[K, V]) Contains(lo, hi K) bool {
	_, ok := t.Get(lo, hi)

	return ok
}

// Delete removes [lo, hi] and reports whether it was present.
// Deleting an absent key is a no-op.
func (t *Tree[K, V]) Delete(lo, hi K) bool {
	if !t.Contains(lo, hi) {
		return false
	}
	if !t.root.left.isRed() && !t.root.right.isRed() {
		t.root.red = true
	}
	t.root = t.root.delete(lo, hi)
	if t.root != nil {
		t.root.red = false
	}

	return true
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}

	return t.root.min().entry(), true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}

	return t.root.max().entry(), true
}

// DeleteMin removes the entry with the smallest key and returns it.
func (t *Tree[K, V]) DeleteMin() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	e := t.root.min().entry()
	if !t.root.left.isRed() && !t.root.right.isRed() {
		t.root.red = true
	}
	t.root = t.root.deleteMin()
	if t.root != nil {
		t.root.red = false
	}

	return e, true
}

// Clear removes every interval.
func (t *Tree[K, V]) Clear() {
	t.root.release()
	t.root = nil
}

// Take moves every interval into a new Tree and leaves t empty. O(1).
func (t *Tree[K, V]) Take() *Tree[K, V] {
	moved := &Tree[K, V]{root: t.root}
	t.root = nil

	return moved
}
