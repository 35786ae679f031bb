// Package lvlspace provides the spatial-metric primitives of an agent-based
// simulation engine: distances, headings and neighborhoods over grid,
// continuous and graph-backed spaces.
//
// 🚀 What is lvlspace?
//
//	A small, allocation-conscious library meant to sit on the hot path of a
//	simulation step loop:
//		• Metrics: Euclidean & Manhattan distance under per-dimension wraparound
//		• Headings: shortest signed displacement vectors on tori and boxes
//		• Neighborhoods: hop-bounded frontier expansion over graph spaces
//		• Capabilities: tiny interfaces any space implementation can satisfy
//
// ✨ Why choose lvlspace?
//
//   - Space-agnostic – bring your own space; the library only asks for
//     dimensionality, extents, a periodicity mask and a one-hop query
//   - Deterministic – neighborhood order follows the space's own one-hop
//     order, level by level, reproducibly
//   - Pure reads – no locks, no hidden state; safe under concurrent calls
//     as long as the space itself is not mutated underneath them
//
// Everything is organized under four subpackages:
//
//	space/     — capability interfaces, Position, descriptor validation
//	metric/    — Euclidean & Manhattan distance, direction vectors
//	nearby/    — hop-bounded neighborhood expansion on graph spaces
//	spacetest/ — minimal reference spaces for tests and examples
//
// Quick ASCII example (1-D ring of size 10):
//
//	9 0 1 2 3 4 5 6 7 8 9 0
//	    ↑A            ↑B
//
//	walking left from A to B costs 3 steps, not 7 — the metric knows the wrap.
//
// Dive into examples/ for runnable scenarios: torus navigation and a
// graph-space broadcast wave.
//
//	go get github.com/katalvlaran/lvlspace
package lvlspace
