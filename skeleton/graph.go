// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package skeleton builds and exposes the restricted Voronoi skeleton
// graph of an island (spec.md 3, "SkeletonGraph"): an arena of nodes
// and directed Neighbor edges addressed by integer index rather than
// pointer, per spec.md 9's guidance on cyclic, twin-linked graphs.
package skeleton

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/skeleton/voronoi"
)

// ErrVoronoiConstruction is the sentinel for spec.md 7's
// VoronoiConstructionError: the underlying diagram produced no
// interior edges, or the input boundary was too degenerate to
// triangulate.
var ErrVoronoiConstruction = errors.New("skeleton: voronoi construction failed")

// Node is a vertex of the skeleton graph.
type Node struct {
	Pos       r2.Point
	Neighbors []int // indices into Graph.Neighbors, outgoing from this node
}

// Neighbor is a directed edge of the skeleton graph between two nodes.
// Edges are geometrically straight (A at the From node, B at Target);
// the width profile is resampled from the underlying voronoi.Edge, in
// the From->Target direction.
type Neighbor struct {
	From, Target int
	Twin         int
	Length       float64
	Widths       []voronoi.WidthSample
	SrcLeft      int
	SrcRight     int
}

// MinWidth, MaxWidth report the bounds of the neighbor's width profile.
func (n Neighbor) MinWidth() float64 {
	m := n.Widths[0].Width
	for _, w := range n.Widths {
		if w.Width < m {
			m = w.Width
		}
	}
	return m
}

func (n Neighbor) MaxWidth() float64 {
	m := n.Widths[0].Width
	for _, w := range n.Widths {
		if w.Width > m {
			m = w.Width
		}
	}
	return m
}

// WidthAt linearly interpolates the width at ratio t in [0,1] along
// the neighbor, measured from From.
func (n Neighbor) WidthAt(t float64) float64 {
	ws := n.Widths
	if t <= ws[0].T {
		return ws[0].Width
	}
	for i := 1; i < len(ws); i++ {
		if t <= ws[i].T {
			span := ws[i].T - ws[i-1].T
			if span == 0 {
				return ws[i].Width
			}
			frac := (t - ws[i-1].T) / span
			return ws[i-1].Width + frac*(ws[i].Width-ws[i-1].Width)
		}
	}
	return ws[len(ws)-1].Width
}

// Position is a point on the skeleton encoded per spec.md 3: a
// neighbor plus a ratio in [0,1] measured from the neighbor's From
// node.
type Position struct {
	Neighbor int
	Ratio    float64
}

// Graph is the full skeleton: an arena of Nodes and Neighbors.
type Graph struct {
	Nodes     []Node
	Neighbors []Neighbor
}

// Point returns the 2D location of a Position, linearly interpolated
// along its neighbor's straight span.
func (g *Graph) Point(p Position) geom.Point {
	n := g.Neighbors[p.Neighbor]
	a, b := g.Nodes[n.From].Pos, g.Nodes[n.Target].Pos
	return geom.FromR2(a.Add(b.Sub(a).Mul(p.Ratio)))
}

// Width returns the island width at a Position.
func (g *Graph) Width(p Position) float64 {
	return g.Neighbors[p.Neighbor].WidthAt(p.Ratio)
}

// Distance returns arc-length distance of a Position from its
// neighbor's From node.
func (p Position) Distance(g *Graph) float64 {
	return p.Ratio * g.Neighbors[p.Neighbor].Length
}

// ContourNodes returns, in ascending node-index order (spec.md 5's
// determinism requirement), the indices of nodes adjacent to a
// neighbor whose min width is (approximately) zero, i.e. nodes that
// touch the island boundary.
func (g *Graph) ContourNodes() []int {
	const eps = 1.0 // nanometers; zero-width touch tolerance
	var out []int
	for i, node := range g.Nodes {
		for _, ni := range node.Neighbors {
			if g.Neighbors[ni].MinWidth() <= eps {
				out = append(out, i)
				break
			}
		}
	}
	sort.Ints(out)
	return out
}

// Build constructs the skeleton graph of an island's boundary by
// computing its restricted medial axis (package voronoi) and wrapping
// the result into an indexed, twin-linked graph: diagram vertices
// that coincide (within snapping tolerance) become a single Node, and
// every voronoi.Edge becomes a pair of twinned Neighbors.
func Build(island geom.ExPolygon) (*Graph, error) {
	boundary := island.Boundary()
	if len(boundary) < 3 {
		return nil, fmt.Errorf("skeleton: %w: fewer than three boundary segments", ErrVoronoiConstruction)
	}
	pts := make([]r2.Point, len(boundary))
	segOf := make([]int, len(boundary))
	for i, l := range boundary {
		pts[i] = l.A.R2()
		segOf[i] = i
	}

	sk, err := voronoi.BuildMedialAxis(pts, segOf, func(p r2.Point) bool {
		return island.Contains(geom.FromR2(p))
	})
	if err != nil {
		return nil, fmt.Errorf("skeleton: %w: %s", ErrVoronoiConstruction, err)
	}

	g := &Graph{}
	nodeIdx := map[snapKey]int{}
	nodeOf := func(p r2.Point) int {
		k := snap(p)
		if idx, ok := nodeIdx[k]; ok {
			return idx
		}
		idx := len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{Pos: p})
		nodeIdx[k] = idx
		return idx
	}

	for _, e := range sk.Edges {
		a, b := nodeOf(e.A), nodeOf(e.B)
		if a == b {
			continue // degenerate (snapped to the same node)
		}
		length := e.B.Sub(e.A).Norm()
		fwd := Neighbor{From: a, Target: b, Length: length, Widths: e.WidthSamples, SrcLeft: e.SrcA, SrcRight: e.SrcB}
		bwd := Neighbor{From: b, Target: a, Length: length, Widths: reverseWidths(e.WidthSamples), SrcLeft: e.SrcB, SrcRight: e.SrcA}
		fi, bi := len(g.Neighbors), len(g.Neighbors)+1
		fwd.Twin, bwd.Twin = bi, fi
		g.Neighbors = append(g.Neighbors, fwd, bwd)
		g.Nodes[a].Neighbors = append(g.Nodes[a].Neighbors, fi)
		g.Nodes[b].Neighbors = append(g.Nodes[b].Neighbors, bi)
	}

	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("skeleton: %w: no interior structure", ErrVoronoiConstruction)
	}
	return g, nil
}

func reverseWidths(ws []voronoi.WidthSample) []voronoi.WidthSample {
	out := make([]voronoi.WidthSample, len(ws))
	n := len(ws)
	for i, w := range ws {
		out[n-1-i] = voronoi.WidthSample{T: 1 - w.T, Width: w.Width}
	}
	return out
}

type snapKey struct{ x, y int64 }

// snap rounds a diagram vertex to a coarse integer grid (100 nm) so
// near-coincident circumcenters from adjacent triangle fans collapse
// to a single skeleton node.
func snap(p r2.Point) snapKey {
	const grid = 100.0
	return snapKey{
		x: int64(p.X/grid + 0.5*sign(p.X)),
		y: int64(p.Y/grid + 0.5*sign(p.Y)),
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
