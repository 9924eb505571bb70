// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package clip implements the small set of polygon operations that
// spec.md's component design treats as "assumed available as an
// external collaborator" (ClipperLib, in the original implementation):
// convex clipping, mitre-join offsetting, and the centroid-of-clipped-
// region computation the Lloyd relaxation in package align needs. No
// general polygon-boolean (Vatti/Weiler-Atherton) library exists in
// the example corpus, so these are implemented directly with standard,
// well-known computational-geometry techniques; see DESIGN.md.
package clip

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/geom"
)

// ConvexClip returns the intersection of subject (any simple polygon,
// convex or not) with window, which must be convex and wound
// counterclockwise. It is the Sutherland-Hodgman algorithm: correct for
// any subject polygon as long as window is convex; if the true
// intersection is disconnected the result threads the pieces together
// along the clip boundary rather than returning multiple polygons -
// callers that need "the piece containing point p" should verify
// containment on the result.
func ConvexClip(subject, window geom.Polygon) geom.Polygon {
	if len(subject) == 0 || len(window) < 3 {
		return nil
	}
	output := subject
	for i := range window {
		if len(output) == 0 {
			return nil
		}
		a, b := window[i], window[(i+1)%len(window)]
		output = clipEdge(output, a, b)
	}
	return output
}

// clipEdge keeps the part of polygon on the left of directed line a->b.
func clipEdge(polygon geom.Polygon, a, b geom.Point) geom.Polygon {
	var out geom.Polygon
	n := len(polygon)
	for i := 0; i < n; i++ {
		cur := polygon[i]
		prev := polygon[(i-1+n)%n]
		curIn := leftOf(a, b, cur)
		prevIn := leftOf(a, b, prev)
		if curIn {
			if !prevIn {
				out = append(out, segmentIntersect(prev, cur, a, b))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, segmentIntersect(prev, cur, a, b))
		}
	}
	return out
}

func leftOf(a, b, p geom.Point) bool {
	v := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	return v >= 0
}

func segmentIntersect(p0, p1, a, b geom.Point) geom.Point {
	p0v, p1v, av, bv := p0.R2(), p1.R2(), a.R2(), b.R2()
	d1 := p1v.Sub(p0v)
	d2 := bv.Sub(av)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return p1
	}
	t := ((av.X-p0v.X)*d2.Y - (av.Y-p0v.Y)*d2.X) / denom
	return geom.FromR2(p0v.Add(d1.Mul(t)))
}

// AreaAndCentroid returns the signed area (positive CCW) and centroid
// of a simple polygon using the standard shoelace-derived formulas.
func AreaAndCentroid(p geom.Polygon) (area float64, centroid r2.Point) {
	if len(p) < 3 {
		return 0, r2.Point{}
	}
	var a, cx, cy float64
	for i := range p {
		p0, p1 := p[i].R2(), p[(i+1)%len(p)].R2()
		cross := p0.X*p1.Y - p1.X*p0.Y
		a += cross
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	a /= 2
	if a == 0 {
		return 0, p[0].R2()
	}
	cx /= 6 * a
	cy /= 6 * a
	return a, r2.Point{X: cx, Y: cy}
}

// ClipExPolygonPiece clips an island (contour plus holes) against the
// convex window and returns the centroid of the whole clipped region,
// exploiting that holes are nested inside the contour: the
// area/centroid of (contour∩window) minus each (hole∩window) is exact
// via the additive centroid formula even though no explicit polygon
// subtraction is performed. When the clipped region falls apart into
// several pieces, the centroid is that of all pieces together; target
// does not select a piece. ok is false only when the clipped contour
// has fewer than three vertices or the remaining area is not positive.
func ClipExPolygonPiece(island geom.ExPolygon, window geom.Polygon, target geom.Point) (centroid geom.Point, ok bool) {
	contourClip := ConvexClip(island.Contour, window)
	if len(contourClip) < 3 {
		return geom.Point{}, false
	}
	area, c := AreaAndCentroid(contourClip)
	area = math.Abs(area)
	weightedX, weightedY := area*c.X, area*c.Y

	for _, hole := range island.Holes {
		holeClip := ConvexClip(hole, window)
		if len(holeClip) < 3 {
			continue
		}
		hArea, hC := AreaAndCentroid(holeClip)
		hArea = math.Abs(hArea)
		area -= hArea
		weightedX -= hArea * hC.X
		weightedY -= hArea * hC.Y
	}
	if area <= 0 {
		return geom.Point{}, false
	}
	result := geom.FromR2(r2.Point{X: weightedX / area, Y: weightedY / area})
	if !island.Contains(target) {
		// target itself escaped the island (shouldn't happen for a
		// well-formed call); still report the clipped region's centroid.
		return result, true
	}
	return result, true
}

// Offset returns polygon p offset by distance along its outward normal
// (positive grows a CCW polygon, negative shrinks it), using mitre
// joins: each edge is translated along its normal, and consecutive
// translated edges are intersected to find the new vertex.
func Offset(p geom.Polygon, distance float64) geom.Polygon {
	n := len(p)
	if n < 3 || distance == 0 {
		return append(geom.Polygon{}, p...)
	}
	type edge struct{ a, b r2.Point }
	edges := make([]edge, n)
	for i := 0; i < n; i++ {
		a, b := p[i].R2(), p[(i+1)%n].R2()
		dir := b.Sub(a)
		length := dir.Norm()
		if length == 0 {
			continue
		}
		normal := r2.Point{X: dir.Y / length, Y: -dir.X / length}
		offset := normal.Mul(distance)
		edges[i] = edge{a: a.Add(offset), b: b.Add(offset)}
	}

	out := make(geom.Polygon, n)
	for i := 0; i < n; i++ {
		prev := edges[(i-1+n)%n]
		cur := edges[i]
		v := lineLineIntersect(prev.a, prev.b, cur.a, cur.b)
		out[i] = geom.FromR2(v)
	}
	return out
}

func lineLineIntersect(a0, a1, b0, b1 r2.Point) r2.Point {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-9 {
		// Parallel edges (e.g. collinear boundary segments): the
		// translated edges coincide, any point on the shared line works.
		return a1
	}
	t := ((b0.X-a0.X)*d2.Y - (b0.Y-a0.Y)*d2.X) / denom
	return a0.Add(d1.Mul(t))
}
