package metric

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/space"
	"github.com/katalvlaran/lvlspace/spacetest"
)

// TestDirection_Torus covers the fully periodic 5×5 torus:
// direct [4,4] loses to the wrap [-1,-1].
func TestDirection_Torus(t *testing.T) {
	torus := spacetest.MustGrid([]float64{5, 5}, []bool{true, true})

	v, err := Direction(space.Position{0, 0}, space.Position{4, 4}, torus)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1}, v, eps)
}

// TestDirection_Box: without periodicity the displacement is a plain difference.
func TestDirection_Box(t *testing.T) {
	box := spacetest.MustGrid([]float64{10, 10}, []bool{false, false})

	v, err := Direction(space.Position{1, 7}, space.Position{6, 2}, box)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, -5}, v, eps)
}

// TestDirection_TieKeepsDirect: exactly half the size either way; the direct
// displacement wins, keeping its sign.
func TestDirection_TieKeepsDirect(t *testing.T) {
	ring := spacetest.MustGrid([]float64{10}, []bool{true})

	v, err := Direction(space.Position{0}, space.Position{5}, ring)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5}, v, eps)

	v, err = Direction(space.Position{5}, space.Position{0}, ring)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-5}, v, eps)
}

// TestDirection_Zero: from == to yields the zero vector on any mask.
func TestDirection_Zero(t *testing.T) {
	for _, mask := range [][]bool{{true, true}, {false, false}, {true, false}} {
		g := spacetest.MustGrid([]float64{8, 8}, mask)
		v, err := Direction(space.Position{3, 5}, space.Position{3, 5}, g)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 0}, v, eps)
	}
}

// TestDirection_Consistency: from + v, folded back into the space, lands on
// to; non-periodic dimensions must land exactly.
func TestDirection_Consistency(t *testing.T) {
	g := spacetest.MustGrid([]float64{7, 20, 3}, []bool{true, false, true})
	rng := rand.New(rand.NewSource(99))
	mask := g.Periodic()

	for trial := 0; trial < 200; trial++ {
		from := randomPosition(rng, g.Size())
		to := randomPosition(rng, g.Size())

		v, err := Direction(from, to, g)
		require.NoError(t, err)

		moved := make(space.Position, len(from))
		for i := range from {
			moved[i] = from[i] + v[i]
		}
		wrapped, err := g.Wrap(moved)
		require.NoError(t, err)

		for i := range to {
			if mask[i] {
				// compare modulo the dimension size: 0 and size are the same point
				diff := math.Abs(wrapped[i] - to[i])
				if diff > g.Size()[i]/2 {
					diff = g.Size()[i] - diff
				}
				assert.InDelta(t, 0, diff, 1e-9, "periodic dim %d", i)
			} else {
				assert.InDelta(t, to[i], moved[i], 1e-9, "plain dim %d", i)
			}
		}
	}
}

// TestDirection_NeverLongerThanDirect: per periodic dimension the chosen
// magnitude is bounded by half the size.
func TestDirection_NeverLongerThanDirect(t *testing.T) {
	ring := spacetest.MustGrid([]float64{12}, []bool{true})
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 500; trial++ {
		from := randomPosition(rng, ring.Size())
		to := randomPosition(rng, ring.Size())
		v, err := Direction(from, to, ring)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(v[0]), 12.0/2+eps)
	}
}

// TestDirection_Errors mirrors the distance validation surface.
func TestDirection_Errors(t *testing.T) {
	g := spacetest.MustGrid([]float64{5}, []bool{true})

	_, err := Direction(space.Position{1, 2}, space.Position{3}, g)
	assert.ErrorIs(t, err, space.ErrDimensionMismatch)

	_, err = Direction(space.Position{1}, space.Position{3}, nil)
	assert.ErrorIs(t, err, space.ErrNilSpace)
}
