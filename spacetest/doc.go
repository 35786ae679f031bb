// Package spacetest provides minimal reference spaces for tests, benchmarks
// and examples: a D-dimensional lattice, two graph-backed spaces, and an
// agent fixture.
//
// These are deliberately small test doubles, not a simulation engine's space
// subsystem — no agent storage, no spatial indexing, no stepping. They exist
// so the metric and nearby packages (and downstream users' tests) have real
// substrates satisfying the space capabilities.
//
//   - Grid      — D-dimensional lattice with per-dimension extents and
//     periodicity; implements space.Space. Wrap folds positions into bounds.
//   - Graph     — space.GraphSpace backed by gonum's simple.UndirectedGraph;
//     one-hop order is ascending vertex id (deterministic).
//   - SeqGraph  — space.GraphSpace over explicit adjacency lists whose
//     neighbor order is preserved verbatim; for order-sensitive tests.
//   - Agent     — space.Locatable with a uuid identity and a settable position.
//   - Path / Cycle / Star — tiny topology builders over Graph.
package spacetest
