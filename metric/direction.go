package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlspace/space"
)

// Direction returns the shortest signed displacement vector v such that
// from + v reaches to, respecting wraparound: for each periodic dimension the
// displacement may go "around the back" when that way is shorter. For
// non-periodic dimensions v[i] is simply to[i] - from[i].
//
// A tie — the two ways around are exactly equal, i.e. half the size —
// resolves to the direct displacement.
//
// Unlike Euclidean/Manhattan this preserves sign and per-dimension structure;
// it is the primitive behind steering and heading calculations.
// Complexity: O(D); allocates only the D-length result.
func Direction(from, to space.Position, s space.Space) (space.Position, error) {
	if err := check(from, to, s); err != nil {
		return nil, err
	}
	v := make(space.Position, len(from))
	mask := s.Periodic()
	if noneSet(mask) {
		// Homogeneous fast path: v = to - from.
		floats.SubTo(v, to, from)
		return v, nil
	}
	size := s.Size()
	for i := range from {
		d := to[i] - from[i]
		if mask[i] {
			d = wrapSigned(d, size[i])
		}
		v[i] = d
	}

	return v, nil
}

// wrapSigned picks the shorter of the two signed displacements along one
// periodic axis: the direct value d, or the same move measured the other way
// around, d - sign(d)·size. Equal magnitudes keep d. For d == 0 the
// complement is a full lap (|−size| > 0), so zero stays zero with no
// special case. Callers guarantee size > 0.
func wrapSigned(d, size float64) float64 {
	around := d - math.Copysign(size, d)
	if math.Abs(around) < math.Abs(d) {
		return around
	}

	return d
}
