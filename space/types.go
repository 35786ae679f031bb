// Package space defines position, capability interfaces, and sentinel errors
// shared by the metric and nearby subpackages of github.com/katalvlaran/lvlspace.
package space

import (
	"errors"
)

// Sentinel errors for descriptor and argument validation.
var (
	// ErrNilSpace is returned when a nil Space handle is passed.
	ErrNilSpace = errors.New("space: space is nil")

	// ErrBadDescriptor indicates len(Size()) or len(Periodic()) disagrees with Dims().
	ErrBadDescriptor = errors.New("space: size/periodicity length must equal dimensionality")

	// ErrPeriodicSize indicates a periodic dimension with a non-positive size;
	// the wrap term min(d, size-d) degenerates there.
	ErrPeriodicSize = errors.New("space: periodic dimension must have positive size")

	// ErrDimensionMismatch indicates positions of unequal length, or a position
	// whose length disagrees with the space's dimensionality.
	ErrDimensionMismatch = errors.New("space: position dimensionality mismatch")

	// ErrVertexRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexRange = errors.New("space: vertex id out of range")
)

// Position is an ordered sequence of D coordinates. Integer lattices use
// whole-valued coordinates; graph spaces address vertices by dense int ids
// instead and do not use Position at all.
type Position []float64

// Space is the geometry capability every space variant exposes.
// The descriptor (Dims, Size, Periodic) is immutable for the space's lifetime.
type Space interface {
	// Dims returns the dimensionality D (positive, fixed per space).
	Dims() int
	// Size returns the per-dimension extents; the value is meaningful only
	// where the matching Periodic flag is set. Length D.
	Size() []float64
	// Periodic returns the per-dimension wraparound mask. Length D.
	Periodic() []bool
}

// GraphSpace is the capability exposed by graph-backed (and map/graph-hybrid)
// spaces. Vertices are indexed 0..VertexCount()-1 contiguously.
type GraphSpace interface {
	// VertexCount returns the number of vertices in the underlying graph.
	VertexCount() int
	// EdgeCount returns the number of edges (directed or undirected, per the
	// underlying graph's own convention).
	EdgeCount() int
	// Neighbors returns the one-hop neighbors of vertex, in the space's own
	// iteration order. That order is the tie-break order of every
	// neighborhood expansion built on top of it.
	// Returns an error wrapping ErrVertexRange for ids outside [0, VertexCount()).
	Neighbors(vertex int) ([]int, error)
}

// Locatable is anything with a position — typically an agent. Metric
// functions accept Locatable entities through their *Between variants and
// dereference them exactly once at the call boundary.
type Locatable interface {
	Position() Position
}
