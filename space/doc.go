// Package space defines the capability contracts between the spatial-metric
// core and the surrounding simulation engine's space/agent subsystem.
//
// What
//
//   - Position: an ordered sequence of D coordinates ([]float64).
//   - Space: geometry capability — dimensionality, extents, periodicity mask.
//   - GraphSpace: graph capability — vertex/edge counts and a one-hop query.
//   - Locatable: agent capability — anything that exposes a Position.
//   - Validate / SizeOf: descriptor invariant checks and a validated,
//     defensive copy of the size vector.
//
// Why
//
//   - The metric and nearby packages never own storage: positions, graphs and
//     agents live in the engine. These interfaces are the whole surface they
//     see, so any space variant (grid, continuous, graph, map-hybrid) plugs in
//     by satisfying one or both capabilities.
//
// Invariants
//
//   - len(Size()) == len(Periodic()) == Dims(), fixed for a space's lifetime.
//   - Every periodic dimension has a strictly positive size; Validate rejects
//     degenerate descriptors with ErrPeriodicSize instead of letting the wrap
//     arithmetic produce garbage.
//   - Graph vertices are dense ids 0..VertexCount()-1; Neighbors reports ids
//     outside that range via ErrVertexRange.
//
// Concurrency
//
//	Everything here is a read-only contract. Implementations may be called
//	from multiple goroutines as long as the space is not mutated concurrently;
//	that locking discipline belongs to the engine, not to this library.
//
// Errors
//
//   - ErrNilSpace       — a nil Space handle was passed.
//   - ErrBadDescriptor  — size/periodicity lengths disagree with Dims().
//   - ErrPeriodicSize   — a periodic dimension declares a non-positive size.
//   - ErrDimensionMismatch — positions disagree in length with each other or
//     with the space.
//   - ErrVertexRange    — a vertex id outside [0, VertexCount()).
package space
