// Package sweep detects intersections among axis-aligned shapes with an
// event-driven sweep line, using an interval.Tree as the set of shapes
// currently crossing the line.
//
// What
//
//   - RectangleIntersections: every pair of axis-aligned rectangles that
//     overlap or touch (shared edges and vertices count).
//   - OrthogonalIntersections: every (vertical, horizontal) segment pair that
//     crosses or touches.
//
// How
//
//	The sweep line moves along x. Events are kept in a min-heap ordered by x,
//	then by kind, so at equal x:
//	  - rectangles: starts are handled before ends (touching ⇒ intersecting);
//	  - segments: horizontal starts, then verticals, then horizontal ends.
//	The active set maps y-spans to the IDs of the shapes covering them. A new
//	rectangle queries the active set with its y-span before joining it; a
//	vertical segment queries with its y-span and never joins.
//
// Complexity (n = number of shapes, k = number of reported pairs)
//
//   - Time:   O(n log n + k log n)
//   - Memory: O(n) for events and the active set, plus O(k) for the result.
//
// Options
//
//   - DefaultOptions(): background context, no intersection hook.
//   - WithContext(ctx): cancel a long sweep; checked once per event.
//   - WithOnIntersection(fn): called for each pair as soon as it is found.
//
// Errors
//
//   - ErrDegenerateRectangle: a rectangle with zero width or height.
//   - ErrDegenerateSegment:   a segment whose endpoints coincide.
//   - ErrDiagonalSegment:     a segment that is neither horizontal nor vertical.
//   - ErrDuplicateID:         two shapes share an ID.
//   - ctx.Err() wrapped, when the context is cancelled mid-sweep.
//
// Collinear horizontal segments are never reported against each other, nor
// are two vertical segments.
package sweep
