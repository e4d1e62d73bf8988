package sweep

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
)

// RectangleIntersections returns every pair of rectangles in rects that
// overlap or touch, sorted by (A, B).
// Returns ErrDegenerateRectangle or ErrDuplicateID for invalid input, or the
// wrapped context error if the sweep is cancelled.
func RectangleIntersections(rects []Rectangle, opts ...Option) ([]Pair, error) {
	// 1) Validate input before touching any state.
	ids := make(map[int]struct{}, len(rects))
	for _, r := range rects {
		if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
			return nil, fmt.Errorf("%w: id %d (%v, %v)", ErrDegenerateRectangle, r.ID, r.Min, r.Max)
		}
		if _, dup := ids[r.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		ids[r.ID] = struct{}{}
	}

	// 2) One start and one end event per rectangle.
	r := newRunner(opts, 2*len(rects))
	for _, rect := range rects {
		r.push(rect.Min.X, kindStart, rect.ID, rect.Min.Y, rect.Max.Y)
		r.push(rect.Max.X, kindEnd, rect.ID, rect.Min.Y, rect.Max.Y)
	}

	// 3) A starting rectangle meets every active rectangle whose y-span it
	//    overlaps, then joins the active set.
	err := r.process(func(e *event) error {
		switch e.kind {
		case kindStart:
			for _, other := range r.active.overlapping(e.lo, e.hi) {
				r.report(e.id, other)
			}

			return r.active.add(e.lo, e.hi, e.id)
		default:
			return r.active.remove(e.lo, e.hi, e.id)
		}
	})
	if err != nil {
		return nil, err
	}

	return r.result(), nil
}

// OrthogonalIntersections returns every (vertical, horizontal) pair of
// segments in segs that cross or touch, sorted by (A, B).
// Returns ErrDegenerateSegment, ErrDiagonalSegment or ErrDuplicateID for
// invalid input, or the wrapped context error if the sweep is cancelled.
func OrthogonalIntersections(segs []Segment, opts ...Option) ([]Pair, error) {
	// 1) Validate input before touching any state.
	ids := make(map[int]struct{}, len(segs))
	for _, s := range segs {
		if s.From == s.To {
			return nil, fmt.Errorf("%w: id %d at %v", ErrDegenerateSegment, s.ID, s.From)
		}
		if !s.Horizontal() && !s.Vertical() {
			return nil, fmt.Errorf("%w: id %d %v→%v", ErrDiagonalSegment, s.ID, s.From, s.To)
		}
		if _, dup := ids[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		ids[s.ID] = struct{}{}
	}

	// 2) Horizontal segments produce start/end events on [y, y];
	//    vertical segments produce one query event on their y-span.
	r := newRunner(opts, 2*len(segs))
	for _, s := range segs {
		if s.Horizontal() {
			y := s.From.Y
			r.push(min(s.From.X, s.To.X), kindStart, s.ID, y, y)
			r.push(max(s.From.X, s.To.X), kindEnd, s.ID, y, y)

			continue
		}
		r.push(s.From.X, kindVertical, s.ID, min(s.From.Y, s.To.Y), max(s.From.Y, s.To.Y))
	}

	// 3) Verticals report every active horizontal within their span.
	err := r.process(func(e *event) error {
		switch e.kind {
		case kindStart:
			return r.active.add(e.lo, e.hi, e.id)
		case kindVertical:
			for _, other := range r.active.overlapping(e.lo, e.hi) {
				r.report(e.id, other)
			}

			return nil
		default:
			return r.active.remove(e.lo, e.hi, e.id)
		}
	})
	if err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state of a single sweep.
type runner struct {
	opts   Options
	pq     eventPQ
	active *activeSet
	pairs  []Pair
	seq    int
}

func newRunner(opts []Option, capacity int) *runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &runner{
		opts:   o,
		pq:     make(eventPQ, 0, capacity),
		active: newActiveSet(),
	}
}

func (r *runner) push(x int, kind eventKind, id, lo, hi int) {
	heap.Push(&r.pq, &event{x: x, kind: kind, id: id, lo: lo, hi: hi, seq: r.seq})
	r.seq++
}

// process pops events in sweep order and hands each to handle, checking the
// context once per event.
func (r *runner) process(handle func(*event) error) error {
	for r.pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("sweep: cancelled with %d events pending: %w", r.pq.Len(), err)
		}
		e := heap.Pop(&r.pq).(*event)
		if err := handle(e); err != nil {
			return fmt.Errorf("sweep: event for id %d at x=%d: %w", e.id, e.x, err)
		}
	}

	return nil
}

func (r *runner) report(a, b int) {
	p := newPair(a, b)
	r.pairs = append(r.pairs, p)
	r.opts.OnIntersection(p)
}

// result returns the collected pairs sorted by (A, B); never nil.
func (r *runner) result() []Pair {
	out := r.pairs
	if out == nil {
		out = []Pair{}
	}
	slices.SortFunc(out, func(p, q Pair) int {
		if c := cmp.Compare(p.A, q.A); c != 0 {
			return c
		}

		return cmp.Compare(p.B, q.B)
	})

	return out
}
