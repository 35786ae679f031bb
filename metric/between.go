package metric

import (
	"github.com/katalvlaran/lvlspace/space"
)

// The *Between variants accept agents (anything space.Locatable) instead of
// raw positions. Each dereferences its entities exactly once, here at the
// call boundary, and delegates; no metric logic is duplicated.

// EuclideanBetween returns the Euclidean distance between the positions of a and b.
func EuclideanBetween(a, b space.Locatable, s space.Space) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilEntity
	}

	return Euclidean(a.Position(), b.Position(), s)
}

// ManhattanBetween returns the Manhattan distance between the positions of a and b.
func ManhattanBetween(a, b space.Locatable, s space.Space) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilEntity
	}

	return Manhattan(a.Position(), b.Position(), s)
}

// DirectionBetween returns the shortest displacement from a's position to b's.
func DirectionBetween(a, b space.Locatable, s space.Space) (space.Position, error) {
	if a == nil || b == nil {
		return nil, ErrNilEntity
	}

	return Direction(a.Position(), b.Position(), s)
}
