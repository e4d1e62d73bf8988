// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"fmt"
)

// Interval is a closed range [Lo, Hi] over an ordered key type.
type Interval[K cmp.Ordered] struct {
	Lo K
	Hi K
}

// Valid reports whether Lo ≤ Hi.
func (i Interval[K]) Valid() bool {
	return i.Lo <= i.Hi
}

// Overlaps reports whether i and o share at least one point.
// Shared endpoints count as overlap.
func (i Interval[K]) Overlaps(o Interval[K]) bool {
	return overlaps(i.Lo, i.Hi, o.Lo, o.Hi)
}

// Contains reports whether x lies within [Lo, Hi].
func (i Interval[K]) Contains(x K) bool {
	return i.Lo <= x && x <= i.Hi
}

// String formats the interval as "[lo, hi]".
func (i Interval[K]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lo, i.Hi)
}

// Entry pairs a stored interval with its value.
type Entry[K cmp.Ordered, V any] struct {
	Interval Interval[K]
	Value    V
}

// node is one stored interval. A nil *node is the empty subtree: it reads
// as black, has size 0 and never contributes to a subtree's maxHi.
type node[K cmp.Ordered, V any] struct {
	lo, hi K
	value  V

	maxHi K // largest hi in the subtree rooted here
	size  int

	left, right *node[K, V]
	red         bool
}

func newNode[K cmp.Ordered, V any](lo, hi K, value V) *node[K, V] {
	return &node[K, V]{
		lo:    lo,
		hi:    hi,
		value: value,
		maxHi: hi,
		size:  1,
		red:   true,
	}
}

func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Interval: Interval[K]{Lo: n.lo, Hi: n.hi}, Value: n.value}
}

// overlaps is the closed-interval overlap test [alo, ahi] ∩ [blo, bhi] ≠ ∅.
func overlaps[K cmp.Ordered](alo, ahi, blo, bhi K) bool {
	return alo <= bhi && ahi >= blo
}

// compareKey orders keys by lo, then hi.
func compareKey[K cmp.Ordered](lo, hi, nlo, nhi K) int {
	if c := cmp.Compare(lo, nlo); c != 0 {
		return c
	}

	return cmp.Compare(hi, nhi)
}
