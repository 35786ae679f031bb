package metric_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlspace/metric"
	"github.com/katalvlaran/lvlspace/space"
	"github.com/katalvlaran/lvlspace/spacetest"
)

// benchPositions builds two random D-dimensional positions inside size.
func benchPositions(d int) (space.Position, space.Position, []float64) {
	rng := rand.New(rand.NewSource(int64(d)))
	size := make([]float64, d)
	p1 := make(space.Position, d)
	p2 := make(space.Position, d)
	for i := 0; i < d; i++ {
		size[i] = 10
		p1[i] = rng.Float64() * 10
		p2[i] = rng.Float64() * 10
	}

	return p1, p2, size
}

// BenchmarkEuclidean_Torus measures the all-periodic fast path, D=3.
func BenchmarkEuclidean_Torus(b *testing.B) {
	p1, p2, size := benchPositions(3)
	g := spacetest.MustGrid(size, []bool{true, true, true})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metric.Euclidean(p1, p2, g)
	}
}

// BenchmarkEuclidean_Mixed measures the general mixed-mask loop, D=3.
func BenchmarkEuclidean_Mixed(b *testing.B) {
	p1, p2, size := benchPositions(3)
	g := spacetest.MustGrid(size, []bool{true, false, true})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metric.Euclidean(p1, p2, g)
	}
}

// BenchmarkManhattan_Box measures the non-periodic fast path, D=3.
func BenchmarkManhattan_Box(b *testing.B) {
	p1, p2, size := benchPositions(3)
	g := spacetest.MustGrid(size, []bool{false, false, false})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metric.Manhattan(p1, p2, g)
	}
}

// BenchmarkDirection_Torus measures heading computation on a torus, D=3.
func BenchmarkDirection_Torus(b *testing.B) {
	p1, p2, size := benchPositions(3)
	g := spacetest.MustGrid(size, []bool{true, true, true})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = metric.Direction(p1, p2, g)
	}
}
