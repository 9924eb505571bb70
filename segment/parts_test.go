// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package segment

import (
	"testing"

	"github.com/resinforge/islandskel/skeleton"
	"github.com/resinforge/islandskel/skeleton/voronoi"
)

func twoEdgeGraph() *skeleton.Graph {
	ws := []voronoi.WidthSample{{T: 0, Width: 2}, {T: 1, Width: 2}}
	return &skeleton.Graph{
		Neighbors: []skeleton.Neighbor{
			{From: 0, Target: 1, Length: 4, Widths: ws, SrcLeft: 1, SrcRight: 2, Twin: 1},
			{From: 1, Target: 0, Length: 4, Widths: ws, SrcLeft: 2, SrcRight: 1, Twin: 0},
			{From: 1, Target: 2, Length: 6, Widths: ws, SrcLeft: 3, SrcRight: 4, Twin: 3},
			{From: 2, Target: 1, Length: 6, Widths: ws, SrcLeft: 4, SrcRight: 3, Twin: 2},
		},
	}
}

func TestEndsOfSortsByNeighbor(t *testing.T) {
	p := &Part{Changes: []Change{
		{Position: skeleton.Position{Neighbor: 5}, NeighborPart: 1},
		{Position: skeleton.Position{Neighbor: 2}, NeighborPart: 2},
	}}
	ends := endsOf(p)
	if ends[0].Neighbor != 2 || ends[1].Neighbor != 5 {
		t.Errorf("endsOf() = %v, want sorted by Neighbor", ends)
	}
}

func TestSourceSegmentsOfCollectsBothSides(t *testing.T) {
	g := twoEdgeGraph()
	p := &Part{Edges: []int{0, 2}}
	segs := sourceSegmentsOf(g, p)
	for _, want := range []int{1, 2, 3, 4} {
		if !segs[want] {
			t.Errorf("sourceSegmentsOf() missing segment %d: %v", want, segs)
		}
	}
}

func TestStartOfPicksLowestEdgeIndex(t *testing.T) {
	p := &Part{Edges: []int{3, 0, 2}}
	if got := startOf(p); got != 0 {
		t.Errorf("startOf() = %d, want 0", got)
	}
}

func TestStartOfEmptyPart(t *testing.T) {
	if got := startOf(&Part{}); got != 0 {
		t.Errorf("startOf(empty) = %d, want 0", got)
	}
}

func TestCenterOfHalfwayAlongPart(t *testing.T) {
	g := twoEdgeGraph()
	// SumLengths=10 -> target=5; edge 0 has length 4 so the walk
	// spills 1 unit into edge 2 (length 6), landing at ratio 1/6.
	p := &Part{Edges: []int{0, 2}, SumLengths: 10}
	pos := centerOf(g, p)
	if pos.Neighbor != 2 {
		t.Fatalf("centerOf().Neighbor = %d, want 2", pos.Neighbor)
	}
	if diffGreater(pos.Ratio, 1.0/6.0, 1e-9) {
		t.Errorf("centerOf().Ratio = %v, want ~%v", pos.Ratio, 1.0/6.0)
	}
}

func diffGreater(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d > eps
}

func TestToThinThickRoundTrips(t *testing.T) {
	g := twoEdgeGraph()
	parts := []*Part{
		{Type: Thin, Edges: []int{0}, SumLengths: 4, Changes: []Change{{Position: skeleton.Position{Neighbor: 0, Ratio: 1}, NeighborPart: 1}}},
		{Type: Thick, Edges: []int{2}, SumLengths: 6, Changes: []Change{{Position: skeleton.Position{Neighbor: 2, Ratio: 0}, NeighborPart: 0}}},
	}
	thin, thick := ToThinThick(g, parts)
	if len(thin) != 1 {
		t.Errorf("ToThinThick() thin count = %d, want 1", len(thin))
	}
	if len(thick) != 1 {
		t.Errorf("ToThinThick() thick count = %d, want 1", len(thick))
	}
	if thick[0].Start != 2 {
		t.Errorf("ThickPart.Start = %d, want 2", thick[0].Start)
	}
}
