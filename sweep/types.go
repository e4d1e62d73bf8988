package sweep

import (
	"context"
	"errors"
)

// Sentinel errors for sweep input validation.
var (
	// ErrDegenerateRectangle indicates a rectangle with zero width or height.
	ErrDegenerateRectangle = errors.New("sweep: rectangle must have non-zero area")

	// ErrDegenerateSegment indicates a segment whose endpoints coincide.
	ErrDegenerateSegment = errors.New("sweep: segment must have non-zero length")

	// ErrDiagonalSegment indicates a segment that is not axis-aligned.
	ErrDiagonalSegment = errors.New("sweep: segment must be horizontal or vertical")

	// ErrDuplicateID indicates two shapes with the same ID.
	ErrDuplicateID = errors.New("sweep: duplicate shape ID")
)

// Point is a position on the integer plane.
type Point struct {
	X, Y int
}

// Rectangle is an axis-aligned rectangle given by its bottom-left (Min) and
// top-right (Max) corners.
type Rectangle struct {
	ID       int
	Min, Max Point
}

// Segment is a horizontal or vertical line segment. Endpoints may be given
// in either order.
type Segment struct {
	ID       int
	From, To Point
}

// Horizontal reports whether s lies on a single y.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y && s.From.X != s.To.X
}

// Vertical reports whether s lies on a single x.
func (s Segment) Vertical() bool {
	return s.From.X == s.To.X && s.From.Y != s.To.Y
}

// Pair is one reported intersection between the shapes with IDs A and B,
// with A < B.
type Pair struct {
	A, B int
}

func newPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Option configures a sweep via functional arguments.
type Option func(*Options)

// Options holds the parameters of a sweep.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnIntersection is called for every pair as soon as it is detected,
	// before the final sorted result is returned.
	OnIntersection func(Pair)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnIntersection: func(Pair) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIntersection registers a callback run for each detected pair.
func WithOnIntersection(fn func(Pair)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIntersection = fn
		}
	}
}
