package nearby

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvlspace/space"
)

// Positions returns the ordered sequence of vertices reachable within radius
// hops of vertex, excluding vertex itself, without duplicates.
//
// The order is level-by-level: the radius == 1 result is the one-hop query's
// own order verbatim, and each further level appends unseen neighbors in
// frontier order, then query order. The visited set and result slice are
// transient; nothing persists across calls.
//
// Returns ErrNilGraph, ErrBadRadius, or ErrNeighbors (wrapping the space's
// error — including space.ErrVertexRange for an invalid vertex id).
func Positions(g space.GraphSpace, vertex, radius int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRadius, radius)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hop, err := g.Neighbors(vertex)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex %d: %w", ErrNeighbors, vertex, err)
	}
	// Copy: the slice doubles as the result and grows level by level, and the
	// space owns hop's backing array.
	found := make([]int, len(hop))
	copy(found, hop)
	for _, w := range found {
		o.OnDiscover(w, 1)
	}
	if radius == 1 {
		return found, nil
	}

	visited := roaring.New()
	visited.Add(uint32(vertex))
	for _, w := range found {
		visited.Add(uint32(w))
	}

	n := g.VertexCount()
	k := 0 // vertices of found already expanded in earlier levels
	for level := 2; level <= radius; level++ {
		frontier := found[k:]
		if len(frontier) == 0 {
			// The previous level discovered nothing; further levels cannot either.
			return found, nil
		}
		k = len(found)
		if k == n {
			// Every vertex already discovered: saturation.
			return found, nil
		}
		for _, v := range frontier {
			hop, err = g.Neighbors(v)
			if err != nil {
				return nil, fmt.Errorf("%w: vertex %d: %w", ErrNeighbors, v, err)
			}
			for _, w := range hop {
				if !visited.CheckedAdd(uint32(w)) {
					continue
				}
				o.OnDiscover(w, level)
				found = append(found, w)
			}
		}
	}

	return found, nil
}

// AllPositions returns a lazy sequence over every vertex id of g, in order
// 0..VertexCount()-1. A nil graph yields nothing.
func AllPositions(g space.GraphSpace) iter.Seq[int] {
	return func(yield func(int) bool) {
		if g == nil {
			return
		}
		for v, n := 0, g.VertexCount(); v < n; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
