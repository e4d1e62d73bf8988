// SPDX-License-Identifier: MIT

package interval

// Balancing primitives. Every helper takes ownership of a subtree and hands
// back its (possibly different) root. Helpers are nil-receiver safe where a
// nil child is a legal input.

func (n *node[K, V]) isRed() bool {
	return n != nil && n.red
}

func (n *node[K, V]) len() int {
	if n == nil {
		return 0
	}

	return n.size
}

// update recomputes size and maxHi from the node and its children.
func (n *node[K, V]) update() {
	n.size = 1 + n.left.len() + n.right.len()
	n.maxHi = n.hi
	if n.left != nil && n.left.maxHi > n.maxHi {
		n.maxHi = n.left.maxHi
	}
	if n.right != nil && n.right.maxHi > n.maxHi {
		n.maxHi = n.right.maxHi
	}
}

// (a,(b,c)x)n -rotL-> ((a,b)n,c)x
func (n *node[K, V]) rotateLeft() *node[K, V] {
	x := n.right
	n.right = x.left
	x.left = n
	x.red = n.red
	n.red = true
	n.update()
	x.update()

	return x
}

// ((a,b)x,c)n -rotR-> (a,(b,c)n)x
func (n *node[K, V]) rotateRight() *node[K, V] {
	x := n.left
	n.left = x.right
	x.right = n
	x.red = n.red
	n.red = true
	n.update()
	x.update()

	return x
}

// flipColors toggles the node and its children.
func (n *node[K, V]) flipColors() {
	n.red = !n.red
	if n.left != nil {
		n.left.red = !n.left.red
	}
	if n.right != nil {
		n.right.red = !n.right.red
	}
}

// fixUp restores left-leaning form, splits temporary 4-nodes and refreshes
// the augmentation of n.
func (n *node[K, V]) fixUp() *node[K, V] {
	if n.right.isRed() && !n.left.isRed() {
		n = n.rotateLeft()
	}
	if n.left.isRed() && n.left.left.isRed() {
		n = n.rotateRight()
	}
	if n.left.isRed() && n.right.isRed() {
		n.flipColors()
	}
	n.update()

	return n
}

// moveRedLeft makes n.left or one of its children red, assuming n is red
// and both n.left and n.left.left are black.
func (n *node[K, V]) moveRedLeft() *node[K, V] {
	n.flipColors()
	if n.right != nil && n.right.left.isRed() {
		n.right = n.right.rotateRight()
		n = n.rotateLeft()
		n.flipColors()
	}

	return n
}

// moveRedRight makes n.right or one of its children red, assuming n is red
// and both n.right and n.right.left are black.
func (n *node[K, V]) moveRedRight() *node[K, V] {
	n.flipColors()
	if n.left != nil && n.left.left.isRed() {
		n = n.rotateRight()
		n.flipColors()
	}

	return n
}

func (n *node[K, V]) insert(lo, hi K, value V) *node[K, V] {
	if n == nil {
		return newNode(lo, hi, value)
	}

	switch c := compareKey(lo, hi, n.lo, n.hi); {
	case c == 0:
		n.value = value

		return n
	case c < 0:
		n.left = n.left.insert(lo, hi, value)
	default:
		n.right = n.right.insert(lo, hi, value)
	}

	return n.fixUp()
}

func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

func (n *node[K, V]) deleteMin() *node[K, V] {
	if n.left == nil {
		return nil
	}
	if !n.left.isRed() && !n.left.left.isRed() {
		n = n.moveRedLeft()
	}
	n.left = n.left.deleteMin()

	return n.fixUp()
}

// delete removes the node keyed [lo, hi]. The key must be present.
func (n *node[K, V]) delete(lo, hi K) *node[K, V] {
	if compareKey(lo, hi, n.lo, n.hi) < 0 {
		if !n.left.isRed() && !n.left.left.isRed() {
			n = n.moveRedLeft()
		}
		n.left = n.left.delete(lo, hi)

		return n.fixUp()
	}

	if n.left.isRed() {
		n = n.rotateRight()
	}
	if compareKey(lo, hi, n.lo, n.hi) == 0 && n.right == nil {
		return nil
	}
	if !n.right.isRed() && !n.right.left.isRed() {
		n = n.moveRedRight()
	}
	if compareKey(lo, hi, n.lo, n.hi) == 0 {
		successor := n.right.min()
		n.lo, n.hi, n.value = successor.lo, successor.hi, successor.value
		n.right = n.right.deleteMin()
	} else {
		n.right = n.right.delete(lo, hi)
	}

	return n.fixUp()
}

// release detaches every node below n, children before parents.
func (n *node[K, V]) release() {
	if n == nil {
		return
	}
	n.left.release()
	n.right.release()
	n.left, n.right = nil, nil
}
