// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package thick implements the thick-part field builder and samplers
// of spec.md 4.5-4.7.
package thick

import (
	"errors"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/geom/clip"
	"github.com/resinforge/islandskel/segment"
)

// ErrEmptyField is returned when a thick part's source segments do
// not cover any boundary arc (should not happen for a well-formed
// segmentation).
var ErrEmptyField = errors.New("thick: part has no boundary coverage")

// Field is the reconstructed polygonal region of one thick part, per
// spec.md 3.
type Field struct {
	Border geom.ExPolygon
	// IsOutline[i] parallels Border.Boundary()[i]: true for a real
	// island-boundary segment, false for a transition chord.
	IsOutline []bool
	Inner     geom.ExPolygon
}

type ring struct {
	poly   geom.Polygon
	offset int // global boundary-line index of ring's first segment
}

// BuildField reconstructs a ThickPart's border from the island
// boundary and its SourceSegments (see DESIGN.md for how this
// simplifies spec.md 4.5's exact equidistant-chord walk into a
// set-membership boundary walk), then insets it by
// minimalDistanceFromOutline.
func BuildField(island geom.ExPolygon, part segment.ThickPart, minimalDistanceFromOutline float64) (Field, error) {
	rings := []ring{{poly: island.Contour, offset: 0}}
	off := len(island.Contour)
	for _, h := range island.Holes {
		rings = append(rings, ring{poly: h, offset: off})
		off += len(h)
	}

	type loop struct {
		pts       geom.Polygon
		isOutline []bool
	}
	var loops []loop
	for _, r := range rings {
		for _, run := range maximalRuns(r, part.SourceSegments) {
			loops = append(loops, loop{pts: run.pts, isOutline: run.isOutline})
		}
	}
	if len(loops) == 0 {
		return Field{}, ErrEmptyField
	}

	// Largest-area loop becomes the contour; the rest are holes.
	bestIdx, bestArea := 0, 0.0
	for i, l := range loops {
		a, _ := clip.AreaAndCentroid(l.pts)
		if abs(a) > bestArea {
			bestArea, bestIdx = abs(a), i
		}
	}

	contourLoop := loops[bestIdx]
	orientLoop(&contourLoop.pts, &contourLoop.isOutline, true)

	f := Field{Border: geom.ExPolygon{Contour: contourLoop.pts}}
	f.IsOutline = append(f.IsOutline, contourLoop.isOutline...)

	for i, l := range loops {
		if i == bestIdx {
			continue
		}
		orientLoop(&l.pts, &l.isOutline, false)
		f.Border.Holes = append(f.Border.Holes, l.pts)
		f.IsOutline = append(f.IsOutline, l.isOutline...)
	}

	f.Inner.Contour = clip.Offset(f.Border.Contour, -minimalDistanceFromOutline)
	for _, h := range f.Border.Holes {
		f.Inner.Holes = append(f.Inner.Holes, clip.Offset(h, -minimalDistanceFromOutline))
	}
	return f, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// orientLoop flips pts/isOutline in place if the loop's winding
// doesn't match wantCCW.
func orientLoop(pts *geom.Polygon, isOutline *[]bool, wantCCW bool) {
	if pts.IsCCW() == wantCCW {
		return
	}
	n := len(*pts)
	rp := make(geom.Polygon, n)
	rf := make([]bool, n)
	for i := 0; i < n; i++ {
		rp[i] = (*pts)[n-1-i]
		rf[i] = (*isOutline)[(2*n-2-i)%n]
	}
	*pts, *isOutline = rp, rf
}

type run struct {
	pts       geom.Polygon
	isOutline []bool
}

// maximalRuns walks ring r's segments cyclically and emits one run
// per maximal arc of segments present in sourceSegments, each closed
// by a straight transition chord from its end back to its start
// (spec.md 4.5 point 4/5's "unvisited segments form closed holes",
// generalized to every run including the outer contour's own).
func maximalRuns(r ring, sourceSegments map[int]bool) []run {
	n := len(r.poly)
	if n == 0 {
		return nil
	}
	owned := make([]bool, n)
	any := false
	for i := 0; i < n; i++ {
		if sourceSegments[r.offset+i] {
			owned[i] = true
			any = true
		}
	}
	if !any {
		return nil
	}
	allOwned := true
	for _, o := range owned {
		if !o {
			allOwned = false
			break
		}
	}
	if allOwned {
		isOut := make([]bool, n)
		for i := range isOut {
			isOut[i] = true
		}
		return []run{{pts: append(geom.Polygon{}, r.poly...), isOutline: isOut}}
	}

	// Find a starting index that begins a run (owned but predecessor not).
	start := -1
	for i := 0; i < n; i++ {
		if owned[i] && !owned[(i-1+n)%n] {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var runs []run
	i := start
	for count := 0; count < n; {
		if !owned[i] {
			i = (i + 1) % n
			count++
			continue
		}
		var pts geom.Polygon
		var isOut []bool
		j := i
		for owned[j] {
			pts = append(pts, r.poly[j])
			isOut = append(isOut, true)
			j = (j + 1) % n
			count++
			if count > n {
				break
			}
		}
		// chord closing run end (r.poly[j]) back to run start (pts[0])
		pts = append(pts, r.poly[j])
		isOut = append(isOut, false)
		runs = append(runs, run{pts: pts, isOutline: isOut})
		i = j
	}
	return runs
}
