// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package segment

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/skeleton"
	"github.com/resinforge/islandskel/skeleton/voronoi"
)

// chainGraph builds an open chain of nodes 0..n with per-edge widths,
// plus a short stub at each end whose width falls from that end edge's
// width to zero where it touches the contour, so g.ContourNodes()
// identifies the chain's two ends and each stub classifies like the
// edge it hangs off.
func chainGraph(widths []float64) *skeleton.Graph {
	g := &skeleton.Graph{}
	n := len(widths) + 1
	for i := 0; i < n; i++ {
		g.Nodes = append(g.Nodes, skeleton.Node{Pos: r2.Point{X: float64(i), Y: 0}})
	}
	for i, w := range widths {
		ws := []voronoi.WidthSample{{T: 0, Width: w}, {T: 1, Width: w}}
		fi, bi := len(g.Neighbors), len(g.Neighbors)+1
		fwd := skeleton.Neighbor{From: i, Target: i + 1, Length: 1, Widths: ws, Twin: bi}
		bwd := skeleton.Neighbor{From: i + 1, Target: i, Length: 1, Widths: reverseWidths(ws), Twin: fi}
		g.Neighbors = append(g.Neighbors, fwd, bwd)
		g.Nodes[i].Neighbors = append(g.Nodes[i].Neighbors, fi)
		g.Nodes[i+1].Neighbors = append(g.Nodes[i+1].Neighbors, bi)
	}
	addStub(g, 0, widths[0])
	addStub(g, n-1, widths[len(widths)-1])
	return g
}

func addStub(g *skeleton.Graph, node int, width float64) {
	stub := len(g.Nodes)
	g.Nodes = append(g.Nodes, skeleton.Node{Pos: g.Nodes[node].Pos})
	ws := []voronoi.WidthSample{{T: 0, Width: width}, {T: 1, Width: 0}}
	fi, bi := len(g.Neighbors), len(g.Neighbors)+1
	fwd := skeleton.Neighbor{From: node, Target: stub, Length: 0.01, Widths: ws, Twin: bi}
	bwd := skeleton.Neighbor{From: stub, Target: node, Length: 0.01, Widths: reverseWidths(ws), Twin: fi}
	g.Neighbors = append(g.Neighbors, fwd, bwd)
	g.Nodes[node].Neighbors = append(g.Nodes[node].Neighbors, fi)
	g.Nodes[stub].Neighbors = append(g.Nodes[stub].Neighbors, bi)
}

func reverseWidths(ws []voronoi.WidthSample) []voronoi.WidthSample {
	out := make([]voronoi.WidthSample, len(ws))
	n := len(ws)
	for i, w := range ws {
		out[n-1-i] = voronoi.WidthSample{T: 1 - w.T, Width: w.Width}
	}
	return out
}

func TestSegmentThinThenThick(t *testing.T) {
	g := chainGraph([]float64{1, 1, 1, 8, 8, 8})
	parts, err := Segment(g, Config{ThinMaxWidth: 2, ThickMinWidth: 4, MinPartLength: 0})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("Segment() produced %d parts, want 2", len(parts))
	}
	types := map[Type]bool{}
	for _, p := range parts {
		types[p.Type] = true
	}
	if !types[Thin] || !types[Thick] {
		t.Errorf("parts = %+v, want one Thin and one Thick", parts)
	}
}

func TestSegmentMergesShortParts(t *testing.T) {
	// A single short thin blip between two thick regions should be
	// absorbed rather than surviving as its own part.
	g := chainGraph([]float64{8, 8, 1, 8, 8})
	parts, err := Segment(g, Config{ThinMaxWidth: 2, ThickMinWidth: 4, MinPartLength: 10})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	for _, p := range parts {
		if p.Type == Thin {
			t.Errorf("short thin blip survived merging: %+v", p)
		}
	}
}

func TestToThinThick(t *testing.T) {
	g := chainGraph([]float64{1, 1, 1, 8, 8, 8})
	parts, err := Segment(g, Config{ThinMaxWidth: 2, ThickMinWidth: 4, MinPartLength: 0})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	thin, thick := ToThinThick(g, parts)
	if len(thin) != 1 || len(thick) != 1 {
		t.Errorf("ToThinThick() = %d thin, %d thick, want 1 and 1", len(thin), len(thick))
	}
}

func TestSegmentEmptyGraph(t *testing.T) {
	_, err := Segment(&skeleton.Graph{}, Config{})
	if err == nil {
		t.Error("Segment(empty graph) error = nil, want ErrSegmentation")
	}
}
