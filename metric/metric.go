package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlspace/space"
)

// Euclidean returns the straight-line distance between p1 and p2 under the
// boundary conditions of s. Symmetric in p1, p2; zero iff the positions
// coincide modulo wraparound. Complexity: O(D), zero allocations.
func Euclidean(p1, p2 space.Position, s space.Space) (float64, error) {
	if err := check(p1, p2, s); err != nil {
		return 0, err
	}
	mask := s.Periodic()
	switch {
	case noneSet(mask):
		// Homogeneous fast path: plain L2 norm of p1-p2.
		return floats.Distance(p1, p2, 2), nil
	case allSet(mask):
		return euclideanTorus(p1, p2, s.Size()), nil
	default:
		return euclideanMixed(p1, p2, s.Size(), mask), nil
	}
}

// Manhattan returns the taxicab distance between p1 and p2 under the boundary
// conditions of s. Same wrap rule as Euclidean, summed without squaring.
// Complexity: O(D), zero allocations.
func Manhattan(p1, p2 space.Position, s space.Space) (float64, error) {
	if err := check(p1, p2, s); err != nil {
		return 0, err
	}
	mask := s.Periodic()
	switch {
	case noneSet(mask):
		// Homogeneous fast path: plain L1 norm of p1-p2.
		return floats.Distance(p1, p2, 1), nil
	case allSet(mask):
		return manhattanTorus(p1, p2, s.Size()), nil
	default:
		return manhattanMixed(p1, p2, s.Size(), mask), nil
	}
}

// check validates the descriptor and the position lengths.
// Shared by every metric entry point.
func check(p1, p2 space.Position, s space.Space) error {
	if err := space.Validate(s); err != nil {
		return err
	}
	if len(p1) != len(p2) || len(p1) != s.Dims() {
		return fmt.Errorf("%w: len(p1) = %d, len(p2) = %d, dims = %d",
			space.ErrDimensionMismatch, len(p1), len(p2), s.Dims())
	}

	return nil
}

// wrapAbs folds the separation |d| across a boundary of the given size:
// the shorter of going straight and going around. Callers guarantee size > 0.
func wrapAbs(d, size float64) float64 {
	d = math.Abs(d)
	if around := size - d; around < d {
		return around
	}

	return d
}

// euclideanMixed is the general algorithm: per-dimension wrap decided by mask.
// The homogeneous paths are strict special cases of this loop.
func euclideanMixed(p1, p2, size []float64, mask []bool) float64 {
	var sum float64
	for i := range p1 {
		term := math.Abs(p1[i] - p2[i])
		if mask[i] {
			term = wrapAbs(term, size[i])
		}
		sum += term * term
	}

	return math.Sqrt(sum)
}

// euclideanTorus is the all-periodic fast path: no mask branch per dimension.
func euclideanTorus(p1, p2, size []float64) float64 {
	var sum float64
	for i := range p1 {
		term := wrapAbs(p1[i]-p2[i], size[i])
		sum += term * term
	}

	return math.Sqrt(sum)
}

// manhattanMixed is the general algorithm for the L1 norm.
func manhattanMixed(p1, p2, size []float64, mask []bool) float64 {
	var sum float64
	for i := range p1 {
		term := math.Abs(p1[i] - p2[i])
		if mask[i] {
			term = wrapAbs(term, size[i])
		}
		sum += term
	}

	return sum
}

// manhattanTorus is the all-periodic fast path for the L1 norm.
func manhattanTorus(p1, p2, size []float64) float64 {
	var sum float64
	for i := range p1 {
		sum += wrapAbs(p1[i]-p2[i], size[i])
	}

	return sum
}

// noneSet reports whether no dimension is periodic.
func noneSet(mask []bool) bool {
	for _, m := range mask {
		if m {
			return false
		}
	}

	return true
}

// allSet reports whether every dimension is periodic.
func allSet(mask []bool) bool {
	for _, m := range mask {
		if !m {
			return false
		}
	}

	return true
}
