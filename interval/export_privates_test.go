// SPDX-License-Identifier: MIT

package interval

// Test-Bridge (White-Box) for tree invariants.
//
// Exposes a structural checker to interval_test without widening the
// production API. The checker walks every node and reports the first
// violation it finds.

import (
	"cmp"
	"fmt"
)

// CheckInvariants verifies key order, left-leaning red links, the absence
// of consecutive red links, perfect black balance, subtree sizes, subtree
// max-hi values and a black root.
func CheckInvariants[K cmp.Ordered, V any](t *Tree[K, V]) error {
	if t.root.isRed() {
		return fmt.Errorf("root [%v, %v] is red", t.root.lo, t.root.hi)
	}

	var prev *node[K, V]
	var orderErr error
	t.root.ascend(func(n *node[K, V]) bool {
		if prev != nil && compareKey(prev.lo, prev.hi, n.lo, n.hi) >= 0 {
			orderErr = fmt.Errorf("key order: [%v, %v] before [%v, %v]", prev.lo, prev.hi, n.lo, n.hi)

			return false
		}
		prev = n

		return true
	})
	if orderErr != nil {
		return orderErr
	}

	_, err := checkNode(t.root)

	return err
}

// BlackHeight returns the number of black links from the root to any leaf.
func BlackHeight[K cmp.Ordered, V any](t *Tree[K, V]) int {
	h := 0
	for n := t.root; n != nil; n = n.left {
		if !n.red {
			h++
		}
	}

	return h
}

// checkNode returns the black height of the subtree rooted at n.
func checkNode[K cmp.Ordered, V any](n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.right.isRed() {
		return 0, fmt.Errorf("right-leaning red link below [%v, %v]", n.lo, n.hi)
	}
	if n.red && n.left.isRed() {
		return 0, fmt.Errorf("consecutive red links at [%v, %v]", n.lo, n.hi)
	}

	lh, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("black imbalance at [%v, %v]: left %d, right %d", n.lo, n.hi, lh, rh)
	}

	if want := 1 + n.left.len() + n.right.len(); n.size != want {
		return 0, fmt.Errorf("size at [%v, %v]: got %d, want %d", n.lo, n.hi, n.size, want)
	}

	want := n.hi
	if n.left != nil && n.left.maxHi > want {
		want = n.left.maxHi
	}
	if n.right != nil && n.right.maxHi > want {
		want = n.right.maxHi
	}
	if n.maxHi != want {
		return 0, fmt.Errorf("maxHi at [%v, %v]: got %v, want %v", n.lo, n.hi, n.maxHi, want)
	}

	if n.red {
		return lh, nil
	}

	return lh + 1, nil
}
