package spacetest

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlspace/space"
)

// Graph is a graph-backed space over gonum's simple.UndirectedGraph, with
// dense vertex ids 0..n-1. Implements space.GraphSpace. Its one-hop order is
// ascending vertex id: gonum iterates adjacency in map order, so Neighbors
// sorts to keep the space's advertised order deterministic.
type Graph struct {
	ug *simple.UndirectedGraph
	nv int
	ne int
}

// NewGraph creates a graph space with n vertices and no edges.
func NewGraph(n int) *Graph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(i))
	}

	return &Graph{ug: ug, nv: n}
}

// Connect adds the undirected edge u—v. Self-loops are rejected (gonum's
// simple graphs do not hold them). Re-adding an existing edge is a no-op.
// Returns space.ErrVertexRange for ids outside [0, n).
func (g *Graph) Connect(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: self-loop %d—%d", space.ErrVertexRange, u, v)
	}
	if g.ug.HasEdgeBetween(int64(u), int64(v)) {
		return nil
	}
	g.ug.SetEdge(g.ug.NewEdge(simple.Node(u), simple.Node(v)))
	g.ne++

	return nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.nv }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.ne }

// Neighbors returns the one-hop neighbors of vertex in ascending id order.
func (g *Graph) Neighbors(vertex int) ([]int, error) {
	if err := g.checkVertex(vertex); err != nil {
		return nil, err
	}
	it := g.ug.From(int64(vertex))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	sort.Ints(out)

	return out, nil
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.nv {
		return fmt.Errorf("%w: %d not in [0, %d)", space.ErrVertexRange, v, g.nv)
	}

	return nil
}

// Path returns a path graph 0—1—…—(n-1).
func Path(n int) *Graph {
	g := NewGraph(n)
	for i := 0; i+1 < n; i++ {
		_ = g.Connect(i, i+1)
	}

	return g
}

// Cycle returns a cycle graph 0—1—…—(n-1)—0. Needs n >= 3.
func Cycle(n int) *Graph {
	g := Path(n)
	if n >= 3 {
		_ = g.Connect(n-1, 0)
	}

	return g
}

// Star returns a star graph: vertex 0 connected to 1..n-1.
func Star(n int) *Graph {
	g := NewGraph(n)
	for i := 1; i < n; i++ {
		_ = g.Connect(0, i)
	}

	return g
}

// SeqGraph is a graph-backed space over caller-supplied adjacency lists.
// Neighbors returns each list verbatim, so tests control the exact one-hop
// order an expansion will observe. Implements space.GraphSpace.
type SeqGraph struct {
	adj [][]int
	ne  int
}

// NewSeqGraph builds a SeqGraph from adjacency lists indexed by vertex id.
// Lists are deep-copied; every referenced id must lie in [0, len(adj)).
// EdgeCount reports the number of adjacency entries (directed arcs).
func NewSeqGraph(adj [][]int) (*SeqGraph, error) {
	n := len(adj)
	g := &SeqGraph{adj: make([][]int, n)}
	for v, row := range adj {
		for _, w := range row {
			if w < 0 || w >= n {
				return nil, fmt.Errorf("%w: neighbor %d of vertex %d not in [0, %d)",
					space.ErrVertexRange, w, v, n)
			}
		}
		g.adj[v] = append([]int(nil), row...)
		g.ne += len(row)
	}

	return g, nil
}

// MustSeqGraph is NewSeqGraph that panics on error; for tests and examples.
func MustSeqGraph(adj [][]int) *SeqGraph {
	g, err := NewSeqGraph(adj)
	if err != nil {
		panic(err)
	}

	return g
}

// VertexCount returns the number of vertices.
func (g *SeqGraph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of adjacency entries (directed arcs).
func (g *SeqGraph) EdgeCount() int { return g.ne }

// Neighbors returns vertex's adjacency list in its configured order.
// Callers must not mutate the returned slice.
func (g *SeqGraph) Neighbors(vertex int) ([]int, error) {
	if vertex < 0 || vertex >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", space.ErrVertexRange, vertex, len(g.adj))
	}

	return g.adj[vertex], nil
}
