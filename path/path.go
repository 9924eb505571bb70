// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package path finds the diameter (longest simple path) of a
// skeleton.Graph, per spec.md 4.2: a two-pass traversal rooted at a
// contour node.
package path

import (
	"github.com/resinforge/islandskel/skeleton"
)

// Path is the result of a longest-path search: the ordered node
// sequence u..v and the neighbor (edge) indices connecting them,
// Edges[i] running from Nodes[i] to Nodes[i+1].
type Path struct {
	Nodes  []int
	Edges  []int
	Length float64
}

// Longest computes the diameter path of g, rooted at root (which must
// be a contour node; callers typically pass g.ContourNodes()[0]).
// Traversal is a DFS with a visited set, so cycles (from island holes)
// are broken deterministically: ties on reachable distance favor the
// side whose neighbor index is lower, i.e. visited first in the stable
// per-node neighbor order (spec.md 4.2, 5).
func Longest(g *skeleton.Graph, root int) Path {
	u, _, _ := farthest(g, root)
	v, dist, parent := farthest(g, u)
	return reconstruct(g, u, v, dist, parent)
}

// farthest runs a DFS from start and returns the farthest node
// reached, its distance, and a parent map of node -> neighbor-edge
// used to reach it (for path reconstruction).
func farthest(g *skeleton.Graph, start int) (best int, bestDist float64, parent map[int]int) {
	visited := make(map[int]bool)
	parent = make(map[int]int)
	best, bestDist = start, 0

	var dfs func(node int, d float64)
	dfs = func(node int, d float64) {
		visited[node] = true
		if d > bestDist {
			bestDist, best = d, node
		}
		for _, ni := range g.Nodes[node].Neighbors {
			nb := g.Neighbors[ni]
			if visited[nb.Target] {
				continue
			}
			parent[nb.Target] = ni
			dfs(nb.Target, d+nb.Length)
		}
	}
	dfs(start, 0)
	return best, bestDist, parent
}

func reconstruct(g *skeleton.Graph, u, v int, length float64, parent map[int]int) Path {
	if u == v {
		return Path{Nodes: []int{u}, Length: 0}
	}
	var nodes []int
	var edges []int
	cur := v
	nodes = append(nodes, cur)
	for cur != u {
		ni, ok := parent[cur]
		if !ok {
			break
		}
		edges = append(edges, ni)
		cur = g.Neighbors[ni].From
		nodes = append(nodes, cur)
	}
	// reverse into u..v order
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Nodes: nodes, Edges: edges, Length: length}
}

// MaxWidth returns the maximum island width observed along the path's
// edges, used by the dispatch step (spec.md 4.9.5) to decide between
// the two-point placement and full segmentation.
func MaxWidth(g *skeleton.Graph, p Path) float64 {
	max := 0.0
	for _, ei := range p.Edges {
		if w := g.Neighbors[ei].MaxWidth(); w > max {
			max = w
		}
	}
	return max
}

// Midpoint returns the skeleton.Position at half the path's total
// length, measured from Nodes[0].
func Midpoint(g *skeleton.Graph, p Path) skeleton.Position {
	return AtDistance(g, p, p.Length/2)
}

// AtDistance returns the skeleton.Position reached after walking dist
// arc-length units from the start of p (clamped to the path's range).
func AtDistance(g *skeleton.Graph, p Path, dist float64) skeleton.Position {
	if dist <= 0 || len(p.Edges) == 0 {
		return skeleton.Position{Neighbor: firstEdge(p), Ratio: 0}
	}
	remaining := dist
	for _, ei := range p.Edges {
		length := g.Neighbors[ei].Length
		if remaining <= length || ei == p.Edges[len(p.Edges)-1] {
			ratio := remaining / length
			if ratio > 1 {
				ratio = 1
			}
			return skeleton.Position{Neighbor: ei, Ratio: ratio}
		}
		remaining -= length
	}
	last := p.Edges[len(p.Edges)-1]
	return skeleton.Position{Neighbor: last, Ratio: 1}
}

func reversed(g *skeleton.Graph, p Path) Path {
	n := len(p.Edges)
	edges := make([]int, n)
	for i, ei := range p.Edges {
		edges[n-1-i] = g.Neighbors[ei].Twin
	}
	nodes := make([]int, len(p.Nodes))
	for i, ni := range p.Nodes {
		nodes[len(p.Nodes)-1-i] = ni
	}
	return Path{Nodes: nodes, Edges: edges, Length: p.Length}
}

func firstEdge(p Path) int {
	if len(p.Edges) == 0 {
		return 0
	}
	return p.Edges[0]
}

// FirstCrossingCapped walks p from the start looking for the first
// position where the width equals target, never looking past capDist
// arc-length units. If no crossing is found within the cap, it
// returns the position at the cap - spec.md 9's Open Question (a):
// the source silently emits at the cap when no crossing exists within
// it, preserved here rather than treated as an error.
func FirstCrossingCapped(g *skeleton.Graph, p Path, target, capDist float64) skeleton.Position {
	walked := 0.0
	for _, ei := range p.Edges {
		n := g.Neighbors[ei]
		segStart, segEnd := walked, walked+n.Length
		if segStart >= capDist {
			break
		}
		limit := n.Length
		if segEnd > capDist {
			limit = capDist - segStart
		}
		t0, t1 := 0.0, limit/n.Length
		w0, w1 := n.WidthAt(t0), n.WidthAt(t1)
		if (w0-target)*(w1-target) <= 0 && w0 != w1 {
			t := (target - w0) / (w1 - w0)
			return skeleton.Position{Neighbor: ei, Ratio: t * t1}
		}
		walked = segEnd
	}
	return AtDistance(g, p, capDist)
}

// FirstCrossingCappedFromEnd is FirstCrossingCapped walked inward
// from the v end of p instead of the u start.
func FirstCrossingCappedFromEnd(g *skeleton.Graph, p Path, target, capDist float64) skeleton.Position {
	return FirstCrossingCapped(g, reversed(g, p), target, capDist)
}
