// SPDX-License-Identifier: MIT

// Package interval provides an interval search tree: a left-leaning red-black
// (LLRB) binary search tree keyed by closed intervals [lo, hi], augmented with
// the maximum hi bound of every subtree so overlap queries can prune whole
// branches.
//
// What
//
//   - Tree[K, V] stores one value per exact interval key; K is any cmp.Ordered type.
//   - Put inserts or overwrites, Get looks up an exact key, Delete removes one.
//   - FindIntersection returns some stored value whose interval overlaps a query.
//   - FindIntersections / Intersecting return every overlapping value (or entry).
//   - Ascend, All, Min, Max enumerate the tree in key order.
//   - Take hands the whole tree to a new owner in O(1); Clear drops every node.
//
// Ordering
//
//	Keys are ordered by lo, with ties broken by hi. Two intervals overlap when
//	a.Lo ≤ b.Hi && a.Hi ≥ b.Lo; touching endpoints therefore overlap.
//
// Balance
//
//	Red links always lean left, no node has two red links in a row, and every
//	root-to-leaf path crosses the same number of black links. Rotations and
//	color flips recompute the subtree size and subtree max-hi of every node
//	they touch, and every recursive insert/delete step calls fixUp on the way
//	back to the root.
//
// Complexity (n = number of stored intervals, k = number of reported matches)
//
//   - Put, Get, Delete, FindIntersection: O(log n)
//   - FindIntersections, Intersecting:    O(k · log n)
//   - Len: O(1); Take: O(1); Ascend/All/Clear: O(n)
//   - Memory: one node per stored interval.
//
// Errors
//
//   - ErrInvertedRange: Put was called with lo > hi. Nothing is stored.
//
// A query interval with lo > hi denotes the empty set and overlaps nothing.
// Absent keys are reported through the boolean result of Get, Delete and
// FindIntersection, never through an error.
//
// A Tree is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package interval
