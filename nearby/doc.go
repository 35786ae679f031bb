// Package nearby expands neighborhoods on graph-backed spaces: every vertex
// reachable within a bounded number of hops of a start vertex.
//
// What
//
//   - Positions(g, vertex, radius): the ordered, duplicate-free sequence of
//     vertices within radius hops of vertex, excluding vertex itself.
//   - AllPositions(g): a lazy sequence of every vertex id, 0..VertexCount()-1.
//   - WithOnDiscover: an instrumentation hook fired once per discovered
//     vertex with its hop level; it never alters the result.
//
// Algorithm (hop-bounded frontier expansion over the space's one-hop query):
//
//  1. nearby := g.Neighbors(vertex); radius == 1 returns it with the one-hop
//     order preserved verbatim.
//  2. visited := {nearby...} ∪ {vertex}.
//  3. Per remaining level, only the vertices discovered in the previous level
//     (the frontier, nearby[k:]) are expanded, in order; each unseen one-hop
//     neighbor is appended in query order.
//  4. Expansion stops early when a level discovers nothing, or when every
//     vertex of the graph has been discovered. Both exits are pure
//     optimizations — the result is identical to running all levels.
//
// Output order is strict level-by-level BFS order: frontier iteration order
// within a level, one-hop query order within a vertex. Never sorted by id.
//
// Why
//
//   - "Who is within r hops of me" is the interaction query of graph-space
//     agent models, issued per agent per step; the frontier-snapshot form
//     expands every vertex at most once.
//
// Complexity (V = vertices, E = edges reachable within radius)
//
//   - Time:   O(V + E)  — each vertex expanded at most once
//   - Memory: O(V)      — visited bitmap + result slice, transient per call
//
// Errors
//
//   - ErrNilGraph          — nil graph space handle.
//   - ErrBadRadius         — radius < 1.
//   - ErrNeighbors         — the one-hop query failed; wraps the space's
//     error, including space.ErrVertexRange for an invalid start vertex.
package nearby
