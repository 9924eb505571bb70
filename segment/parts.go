// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package segment

import (
	"sort"

	"github.com/resinforge/islandskel/skeleton"
)

// ThinPart is the input to sample/thin: a center Position to grow the
// arc-length walk outward from, and the transition Positions where it
// meets its thick neighbors.
type ThinPart struct {
	Center skeleton.Position
	Ends   []skeleton.Position
}

// ThickPart is the input to sample/thick's field builder: the
// starting Neighbor of its boundary walk, the transition Positions
// bounding it, and the set of island boundary segment indices its
// skeleton edges are nearest to (used to reconstruct the field
// border, see DESIGN.md on the field-builder simplification).
type ThickPart struct {
	Start          int
	Ends           []skeleton.Position
	SourceSegments map[int]bool
}

// ToThinThick converts the final, alternating thin/thick Parts into
// the ThinPart/ThickPart shapes the samplers consume. A single
// remaining part is converted by its type like any other.
func ToThinThick(g *skeleton.Graph, parts []*Part) ([]ThinPart, []ThickPart) {
	var thin []ThinPart
	var thick []ThickPart
	for _, p := range parts {
		ends := endsOf(p)
		switch p.Type {
		case Thin:
			thin = append(thin, ThinPart{Center: centerOf(g, p), Ends: ends})
		case Thick:
			thick = append(thick, ThickPart{Start: startOf(p), Ends: ends, SourceSegments: sourceSegmentsOf(g, p)})
		}
	}
	return thin, thick
}

func endsOf(p *Part) []skeleton.Position {
	ends := make([]skeleton.Position, 0, len(p.Changes))
	for _, ch := range p.Changes {
		ends = append(ends, ch.Position)
	}
	sort.Slice(ends, func(i, j int) bool { return ends[i].Neighbor < ends[j].Neighbor })
	return ends
}

func sourceSegmentsOf(g *skeleton.Graph, p *Part) map[int]bool {
	out := map[int]bool{}
	for _, e := range p.Edges {
		n := g.Neighbors[e]
		out[n.SrcLeft] = true
		out[n.SrcRight] = true
	}
	return out
}

func startOf(p *Part) int {
	if len(p.Edges) == 0 {
		return 0
	}
	edges := append([]int{}, p.Edges...)
	sort.Ints(edges)
	return edges[0]
}

// centerOf approximates spec.md 4.3's "midpoint of the longest
// internal path" by walking the part's edges, sorted by id for
// determinism, to half its accumulated length - consistent with this
// package's SumLengths-based longest-internal-distance approximation
// (see DESIGN.md).
func centerOf(g *skeleton.Graph, p *Part) skeleton.Position {
	edges := append([]int{}, p.Edges...)
	sort.Ints(edges)
	if len(edges) == 0 {
		return skeleton.Position{}
	}
	target := p.SumLengths / 2
	walked := 0.0
	for _, e := range edges {
		length := g.Neighbors[e].Length
		if walked+length >= target {
			ratio := 0.0
			if length > 0 {
				ratio = (target - walked) / length
			}
			if ratio < 0 {
				ratio = 0
			} else if ratio > 1 {
				ratio = 1
			}
			return skeleton.Position{Neighbor: e, Ratio: ratio}
		}
		walked += length
	}
	last := edges[len(edges)-1]
	return skeleton.Position{Neighbor: last, Ratio: 1}
}
