// Package nearby defines options and sentinel errors
// for the nearby subpackage of github.com/katalvlaran/lvlspace.
package nearby

import (
	"errors"
)

// Sentinel errors for neighborhood expansion.
var (
	// ErrNilGraph is returned if a nil graph space is passed.
	ErrNilGraph = errors.New("nearby: graph space is nil")

	// ErrBadRadius is returned for radius < 1.
	ErrBadRadius = errors.New("nearby: radius must be >= 1")

	// ErrNeighbors is returned when the one-hop query fails; it wraps the
	// space's own error, so errors.Is(err, space.ErrVertexRange) still works
	// for invalid vertex ids.
	ErrNeighbors = errors.New("nearby: one-hop query failed")
)

// Option configures neighborhood expansion via functional arguments.
type Option func(*Options)

// Options holds the expansion callbacks.
type Options struct {
	// OnDiscover is called once for each vertex entering the result, with the
	// hop level (1-based) at which it was found. Purely observational: it
	// must not mutate the space, and it cannot alter the result.
	OnDiscover func(vertex, level int)
}

// DefaultOptions returns Options with a no-op OnDiscover hook.
func DefaultOptions() Options {
	return Options{
		OnDiscover: func(int, int) {},
	}
}

// WithOnDiscover registers a callback fired per discovered vertex.
func WithOnDiscover(fn func(vertex, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
