package sweep_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/ivtree/sweep"
)

// benchmarkRectangles runs the rectangle sweep over n random rectangles.
func benchmarkRectangles(b *testing.B, n int) {
	rng := rand.New(rand.NewPCG(uint64(n), 17))
	rects := make([]sweep.Rectangle, n)
	for i := range rects {
		x, y := rng.IntN(10*n), rng.IntN(10*n)
		rects[i] = sweep.Rectangle{
			ID:  i,
			Min: sweep.Point{X: x, Y: y},
			Max: sweep.Point{X: x + 1 + rng.IntN(20), Y: y + 1 + rng.IntN(20)},
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.RectangleIntersections(rects); err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
	}
}

// BenchmarkRectangleIntersections_1K sweeps 1 000 rectangles.
func BenchmarkRectangleIntersections_1K(b *testing.B) { benchmarkRectangles(b, 1_000) }

// BenchmarkRectangleIntersections_10K sweeps 10 000 rectangles.
func BenchmarkRectangleIntersections_10K(b *testing.B) { benchmarkRectangles(b, 10_000) }

// BenchmarkOrthogonalIntersections_Grid sweeps a 100×100 grid of segments.
func BenchmarkOrthogonalIntersections_Grid(b *testing.B) {
	const n = 100
	segs := make([]sweep.Segment, 0, 2*n)
	for i := 0; i < n; i++ {
		segs = append(segs,
			sweep.Segment{ID: i, From: sweep.Point{X: 0, Y: i}, To: sweep.Point{X: n, Y: i}},
			sweep.Segment{ID: n + i, From: sweep.Point{X: i, Y: 0}, To: sweep.Point{X: i, Y: n}},
		)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.OrthogonalIntersections(segs); err != nil {
			b.Fatalf("sweep failed: %v", err)
		}
	}
}
