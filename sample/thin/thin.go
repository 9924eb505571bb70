// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package thin implements the thin-part sampler of spec.md 4.4:
// distributing points along a ThinPart's skeleton at a fixed
// arc-length spacing, starting from its center and walking outward.
package thin

import (
	"sort"

	"github.com/resinforge/islandskel/skeleton"
)

// Kind distinguishes where along the walk a SamplePoint was emitted.
type Kind int

const (
	End Kind = iota
	Change
	Loop
)

// SamplePoint is one emitted point: its Position on the skeleton and Kind.
type SamplePoint struct {
	Position skeleton.Position
	Kind     Kind
}

// Input is the data the sampler needs: the graph, the set of
// undirected edge ids belonging to this thin part, its center, and
// its boundary transition positions (spec.md 3's ThinPart).
type Input struct {
	Graph   *skeleton.Graph
	Edges   map[int]bool
	Center  skeleton.Position
	Ends    []skeleton.Position
	Spacing float64
}

// cursor walks a directed edge starting at arc-length startPos from
// its From node, owing its next emission in `needed` more arc length.
type cursor struct {
	edge     int
	startPos float64
	needed   float64
}

// Sample walks in.Edges outward from in.Center in both directions,
// emitting points every in.Spacing arc-length units, per spec.md 4.4.
func Sample(in Input) []SamplePoint {
	if in.Spacing <= 0 {
		return nil
	}
	g := in.Graph
	endNodes := map[int]bool{}
	for _, e := range in.Ends {
		endNodes[g.Neighbors[e.Neighbor].From] = true
	}

	var out []SamplePoint
	visitedNodes := map[int]bool{}

	centerNeighbor := g.Neighbors[in.Center.Neighbor]

	// Two initial cursors straddling the center position: forward
	// along Center.Neighbor, and backward along its twin. Each owes
	// its first point in support_distance/2 (spec.md 4.4).
	distIntoEdge := in.Center.Ratio * centerNeighbor.Length
	var stack []cursor
	stack = append(stack,
		cursor{edge: in.Center.Neighbor, startPos: distIntoEdge, needed: in.Spacing / 2},
		cursor{edge: centerNeighbor.Twin, startPos: centerNeighbor.Length - distIntoEdge, needed: in.Spacing / 2},
	)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, walk(g, in, cur, endNodes, visitedNodes, &stack)...)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Position.Neighbor != out[j].Position.Neighbor {
			return out[i].Position.Neighbor < out[j].Position.Neighbor
		}
		return out[i].Position.Ratio < out[j].Position.Ratio
	})
	return out
}

func walk(g *skeleton.Graph, in Input, start cursor, endNodes, visitedNodes map[int]bool, stack *[]cursor) []SamplePoint {
	var out []SamplePoint
	cur := start
	for {
		n := g.Neighbors[cur.edge]
		length := n.Length
		pos := cur.startPos
		needed := cur.needed

		for needed <= length-pos {
			pos += needed
			ratio := pos / length
			if ratio > 1 {
				ratio = 1
			}
			out = append(out, SamplePoint{Position: skeleton.Position{Neighbor: cur.edge, Ratio: ratio}, Kind: Change})
			needed = in.Spacing
		}
		// needed now exceeds the edge's remaining length: carry the
		// shortfall into the node as the budget owed on the next edge.
		nextNeeded := needed - (length - pos)
		sinceLast := in.Spacing - nextNeeded

		node := n.Target
		if visitedNodes[node] {
			if sinceLast >= in.Spacing/2 {
				out = append(out, SamplePoint{Position: skeleton.Position{Neighbor: cur.edge, Ratio: 1}, Kind: Loop})
			}
			return out
		}
		visitedNodes[node] = true

		if endNodes[node] {
			if sinceLast > in.Spacing/2 {
				out = append(out, SamplePoint{Position: skeleton.Position{Neighbor: cur.edge, Ratio: 1}, Kind: End})
			}
			return out
		}

		next := unvisitedPartNeighbors(g, in, node, cur.edge, visitedNodes)
		if len(next) == 0 {
			return out
		}
		cur = cursor{edge: next[0], startPos: 0, needed: nextNeeded}
		for _, ni := range next[1:] {
			*stack = append(*stack, cursor{edge: ni, startPos: 0, needed: nextNeeded})
		}
	}
}

// unvisitedPartNeighbors returns the part-membership edges leading out
// of node, excluding the twin of arrivalEdge (the edge just walked, so
// a cursor never immediately re-descends the edge it came in on) and
// any edge whose target has already been visited by another branch of
// the walk.
func unvisitedPartNeighbors(g *skeleton.Graph, in Input, node, arrivalEdge int, visitedNodes map[int]bool) []int {
	var out []int
	backEdge := g.Neighbors[arrivalEdge].Twin
	ids := g.Nodes[node].Neighbors
	sorted := append([]int{}, ids...)
	sort.Ints(sorted)
	for _, ni := range sorted {
		if ni == backEdge {
			continue
		}
		eid := canonical(g, ni)
		if !in.Edges[eid] {
			continue
		}
		if visitedNodes[g.Neighbors[ni].Target] {
			continue
		}
		out = append(out, ni)
	}
	return out
}

func canonical(g *skeleton.Graph, ni int) int {
	twin := g.Neighbors[ni].Twin
	if twin < ni {
		return twin
	}
	return ni
}
