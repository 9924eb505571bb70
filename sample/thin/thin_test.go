// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package thin

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/skeleton"
	"github.com/resinforge/islandskel/skeleton/voronoi"
)

// straightChain builds nodes 0-1-2-3 with three length-11 edges (twin
// pairs 0/1, 2/3, 4/5), for a total chain length of 33. The length is
// chosen so a 5-unit sample spacing never lands exactly on a node,
// which would make the end-of-walk arithmetic tie-sensitive.
func straightChain() *skeleton.Graph {
	g := &skeleton.Graph{}
	for i := 0; i < 4; i++ {
		g.Nodes = append(g.Nodes, skeleton.Node{Pos: r2.Point{X: float64(i) * 11, Y: 0}})
	}
	ws := []voronoi.WidthSample{{T: 0, Width: 2}, {T: 1, Width: 2}}
	add := func(a, b int) {
		fi, bi := len(g.Neighbors), len(g.Neighbors)+1
		g.Neighbors = append(g.Neighbors,
			skeleton.Neighbor{From: a, Target: b, Length: 11, Widths: ws, Twin: bi},
			skeleton.Neighbor{From: b, Target: a, Length: 11, Widths: ws, Twin: fi},
		)
		g.Nodes[a].Neighbors = append(g.Nodes[a].Neighbors, fi)
		g.Nodes[b].Neighbors = append(g.Nodes[b].Neighbors, bi)
	}
	add(0, 1)
	add(1, 2)
	add(2, 3)
	return g
}

func TestSampleWalksOutwardFromCenter(t *testing.T) {
	g := straightChain()
	in := Input{
		Graph:   g,
		Edges:   map[int]bool{0: true, 2: true, 4: true},
		Center:  skeleton.Position{Neighbor: 2, Ratio: 0.5},
		Ends:    []skeleton.Position{{Neighbor: 0}, {Neighbor: 5}},
		Spacing: 5,
	}
	out := Sample(in)
	if len(out) == 0 {
		t.Fatal("Sample() returned no points")
	}
	for i := 1; i < len(out); i++ {
		a, b := out[i-1].Position, out[i].Position
		if a.Neighbor > b.Neighbor || (a.Neighbor == b.Neighbor && a.Ratio > b.Ratio) {
			t.Errorf("Sample() not sorted at %d: %+v then %+v", i, a, b)
		}
	}
	var sawEnd bool
	for _, s := range out {
		if s.Kind == End {
			sawEnd = true
		}
	}
	if !sawEnd {
		t.Error("Sample() never reached a chain end")
	}
}

func TestSampleZeroSpacingReturnsNil(t *testing.T) {
	g := straightChain()
	in := Input{Graph: g, Edges: map[int]bool{0: true}, Center: skeleton.Position{Neighbor: 0}, Spacing: 0}
	if out := Sample(in); out != nil {
		t.Errorf("Sample(spacing=0) = %v, want nil", out)
	}
}

func TestCanonicalPicksLowerTwinIndex(t *testing.T) {
	g := straightChain()
	if got := canonical(g, 1); got != 0 {
		t.Errorf("canonical(1) = %d, want 0", got)
	}
	if got := canonical(g, 0); got != 0 {
		t.Errorf("canonical(0) = %d, want 0", got)
	}
}
