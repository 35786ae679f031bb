// Package metric defines the norm selector and sentinel errors
// for the metric subpackage of github.com/katalvlaran/lvlspace.
package metric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlspace/space"
)

// Sentinel errors for metric operations.
var (
	// ErrUnknownKind is returned by Provider for an unrecognized Kind.
	ErrUnknownKind = errors.New("metric: unknown metric kind")

	// ErrNilEntity is returned by the *Between variants for a nil entity.
	ErrNilEntity = errors.New("metric: entity is nil")
)

// Kind selects a distance norm by value.
type Kind int

const (
	// KindEuclidean selects the L2 norm (straight-line distance).
	KindEuclidean Kind = iota
	// KindManhattan selects the L1 norm (taxicab distance).
	KindManhattan
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindEuclidean:
		return "Euclidean"
	case KindManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Func is the shape shared by both distance functions.
type Func func(p1, p2 space.Position, s space.Space) (float64, error)

// Provider returns the distance function for k, so callers configuring a norm
// at runtime dispatch through a single point.
// Returns ErrUnknownKind for anything else.
func Provider(k Kind) (Func, error) {
	switch k {
	case KindEuclidean:
		return Euclidean, nil
	case KindManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}
