// Package ivtree is an in-memory interval search tree plus the sweep-line
// algorithms built on top of it.
//
// 🚀 What is ivtree?
//
//	A small, generic library and CLI that brings together:
//		• interval: a left-leaning red-black tree keyed by closed intervals,
//		  augmented with the largest subtree endpoint for overlap queries
//		• sweep: rectangle intersection and orthogonal segment intersection
//		  reports driven by an interval tree over the active set
//		• cmd/ivtree: a CLI reading shapes and labelled intervals from YAML
//
// ✨ Why ivtree?
//
//   - Generic keys: any cmp.Ordered type (ints, floats, strings)
//   - Closed-interval semantics: touching endpoints count as overlap
//   - Predictable cost: O(log n) updates, O(k · log n) overlap listing
//   - Cancellable sweeps: context.Context and per-pair hooks
//
// Layout:
//
//	interval/         Tree[K, V]: Put, Get, Delete, FindIntersection(s), ordered iteration
//	sweep/            RectangleIntersections, OrthogonalIntersections
//	internal/config/  viper-backed CLI settings (file, IVTREE_* env)
//	internal/input/   YAML input documents
//	internal/report/  table and YAML output
//	cmd/ivtree/       cobra CLI
//
// Quick ASCII example:
//
//	    4───8  (D)
//	       7───10  (F)        query [8, 9] → D, F
//	                15──18 (E)
//
//	go get github.com/katalvlaran/ivtree/interval
package ivtree
