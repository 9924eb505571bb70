// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command islandviz is a debug CLI (not a GUI) that renders an
// island's skeleton, segmentation and sample points to SVG, mirroring
// the observer hooks of spec.md §9's Design Notes. It reads an island
// dump in the format sliceio reads/writes and takes the first slice
// at or after a requested height.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/segment"
	"github.com/resinforge/islandskel/skeleton"
	"github.com/resinforge/islandskel/sliceio"
	"github.com/resinforge/islandskel/support"
)

const (
	width  = 1200
	height = 1200

	islandStyle   = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	skeletonStyle = "stroke:rgb(0,120,220);stroke-width:1"
	thinStyle     = "stroke:rgb(0,170,0);stroke-width:2"
	thickStyle    = "stroke:rgb(220,120,0);stroke-width:2"
	pointStyle    = "fill:rgb(220,0,0)"
)

func main() {
	in := flag.String("in", "", "island dump path (sliceio format)")
	height_ := flag.Float64("height", 0, "slice height to render")
	out := flag.String("out", "island.svg", "output SVG path")
	flag.Parse()

	if *in == "" {
		log.Fatal("islandviz: -in is required")
	}

	dump, err := readDump(*in)
	if err != nil {
		log.Fatal(err)
	}
	slice, ok := sliceAtHeight(dump, *height_)
	if !ok {
		log.Fatalf("islandviz: no slice at or above height %g", *height_)
	}
	island := geom.ExPolygon{Contour: slice.Polygon}

	if err := render(*out, island); err != nil {
		log.Fatal(err)
	}
}

func readDump(path string) (sliceio.IslandDump, error) {
	f, err := os.Open(path)
	if err != nil {
		return sliceio.IslandDump{}, err
	}
	defer f.Close()
	return sliceio.ReadIslandDump(f)
}

func sliceAtHeight(d sliceio.IslandDump, h float64) (sliceio.Slice, bool) {
	for _, s := range d.Slices {
		if s.Height >= h {
			return s, true
		}
	}
	return sliceio.Slice{}, false
}

func render(path string, island geom.ExPolygon) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	bounds := island.Contour.Bounds()
	sx, sy, ox, oy := screenTransform(bounds)

	var g *skeleton.Graph
	var parts []*segment.Part
	var points []support.Point

	cfg := support.Default()
	cfg.Observer = support.Observer{
		PostSkeleton:     func(built *skeleton.Graph) { g = built },
		PostSegmentation: func(p []*segment.Part) { parts = p },
		PostSampling:     func(p []support.Point) { points = p },
	}
	samples, sampleErr := support.SampleIsland(island, cfg)
	if sampleErr != nil {
		fmt.Fprintf(os.Stderr, "islandviz: sampling warning: %v\n", sampleErr)
	}
	if points == nil {
		points = samples
	}

	project := func(p geom.Point) (int, int) {
		return int(float64(p.X-ox) * sx), int(float64(p.Y-oy) * sy)
	}

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	drawPolygon(canvas, island.Contour, project, islandStyle)
	for _, h := range island.Holes {
		drawPolygon(canvas, h, project, islandStyle)
	}

	if g != nil {
		drawSkeleton(canvas, g, project)
	}
	if parts != nil {
		drawSegmentation(canvas, g, parts, project)
	}
	for _, p := range points {
		x, y := project(p.Pos)
		canvas.Circle(x, y, 4, pointStyle)
	}

	canvas.End()
	return nil
}

func screenTransform(b geom.Box) (sx, sy float64, ox, oy int64) {
	w := float64(b.Max.X - b.Min.X)
	h := float64(b.Max.Y - b.Min.Y)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	scale := (width - 40) / w
	if hs := (height - 40) / h; hs < scale {
		scale = hs
	}
	return scale, scale, b.Min.X - 20, b.Min.Y - 20
}

func drawPolygon(canvas *svg.SVG, p geom.Polygon, project func(geom.Point) (int, int), style string) {
	xs := make([]int, len(p))
	ys := make([]int, len(p))
	for i, v := range p {
		xs[i], ys[i] = project(v)
	}
	canvas.Polygon(xs, ys, style)
}

func drawSkeleton(canvas *svg.SVG, g *skeleton.Graph, project func(geom.Point) (int, int)) {
	for _, n := range g.Neighbors {
		if n.Twin < 0 {
			continue
		}
		a := g.Nodes[n.From].Pos
		b := g.Nodes[n.Target].Pos
		x1, y1 := project(geom.FromR2(a))
		x2, y2 := project(geom.FromR2(b))
		canvas.Line(x1, y1, x2, y2, skeletonStyle)
	}
}

func drawSegmentation(canvas *svg.SVG, g *skeleton.Graph, parts []*segment.Part, project func(geom.Point) (int, int)) {
	for _, part := range parts {
		style := thickStyle
		if part.Type == segment.Thin {
			style = thinStyle
		}
		for _, eid := range part.Edges {
			n := g.Neighbors[eid]
			a := g.Nodes[n.From].Pos
			b := g.Nodes[n.Target].Pos
			x1, y1 := project(geom.FromR2(a))
			x2, y2 := project(geom.FromR2(b))
			canvas.Line(x1, y1, x2, y2, style)
		}
	}
}
