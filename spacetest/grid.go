package spacetest

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlspace/space"
)

// Grid is a D-dimensional lattice with fixed extents and a per-dimension
// periodicity mask. Immutable once built; implements space.Space.
type Grid struct {
	size     []float64
	periodic []bool
}

// NewGrid builds a Grid from a size vector and a matching periodicity mask.
// Inputs are deep-copied. The descriptor is validated eagerly, so a periodic
// dimension of size zero is rejected here, at construction time.
func NewGrid(size []float64, periodic []bool) (*Grid, error) {
	g := &Grid{
		size:     slices.Clone(size),
		periodic: slices.Clone(periodic),
	}
	if err := space.Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// MustGrid is NewGrid that panics on error; for tests and examples.
func MustGrid(size []float64, periodic []bool) *Grid {
	g, err := NewGrid(size, periodic)
	if err != nil {
		panic(err)
	}

	return g
}

// Dims returns the dimensionality.
func (g *Grid) Dims() int { return len(g.size) }

// Size returns the per-dimension extents. Callers must not mutate it.
func (g *Grid) Size() []float64 { return g.size }

// Periodic returns the per-dimension wraparound mask. Callers must not mutate it.
func (g *Grid) Periodic() []bool { return g.periodic }

// Wrap folds p into the grid's bounds: each periodic coordinate is reduced
// modulo its size into [0, size); non-periodic coordinates pass through.
// Returns space.ErrDimensionMismatch when len(p) != Dims().
func (g *Grid) Wrap(p space.Position) (space.Position, error) {
	if len(p) != g.Dims() {
		return nil, fmt.Errorf("%w: len(p) = %d, dims = %d",
			space.ErrDimensionMismatch, len(p), g.Dims())
	}
	out := make(space.Position, len(p))
	for i, c := range p {
		if g.periodic[i] {
			c = math.Mod(c, g.size[i])
			if c < 0 {
				c += g.size[i]
			}
		}
		out[i] = c
	}

	return out, nil
}
