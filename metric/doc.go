// Package metric computes distances and direction vectors between positions
// under per-dimension periodic boundary conditions.
//
// What
//
//   - Euclidean / Manhattan: non-negative scalar distance between two
//     D-dimensional positions, folding each periodic dimension across its
//     boundary so the "short way around" always wins.
//   - Direction: the shortest signed displacement vector from one position to
//     another, preserving heading for steering calculations.
//   - Kind / Provider: select a norm by value when callers configure the
//     metric rather than hard-code it.
//   - *Between variants: the same operations over space.Locatable entities
//     (agents), dereferenced once at the call boundary.
//
// Per-dimension rule (the general algorithm; i ranges over 0..D):
//
//	periodic dim i, size s:  term = min(|p1[i]-p2[i]|, s - |p1[i]-p2[i]|)
//	non-periodic dim i:      term = |p1[i]-p2[i]|
//
//	Euclidean = sqrt(Σ term²)    Manhattan = Σ term
//
// Homogeneous masks (all dimensions periodic, or none) take internal fast
// paths; those are pure optimizations, result-identical to the general loop,
// and the tests prove the equivalence.
//
// Direction chooses, per periodic dimension, between the direct displacement
// d = to-from and its wrap complement d - sign(d)·s, keeping the smaller in
// magnitude. A tie (exactly half the size) resolves to the direct value.
//
// Why
//
//   - Toroidal worlds are the default in agent-based models; a metric that
//     ignores the wrap misjudges every interaction radius near a boundary.
//   - These functions run per agent pair per step, so they allocate nothing
//     (Direction allocates only its D-length result).
//
// Complexity
//
//   - Time O(D), Memory O(1) for distances, O(D) for Direction.
//
// Errors
//
//   - space.ErrDimensionMismatch — p1/p2/from/to lengths disagree with each
//     other or with the space.
//   - space.ErrNilSpace, space.ErrBadDescriptor, space.ErrPeriodicSize —
//     propagated from descriptor validation.
//   - ErrUnknownKind — Provider was asked for a norm it does not know.
//   - ErrNilEntity — a *Between variant received a nil entity.
//
// See: examples/ at the repository root for runnable scenarios.
package metric
