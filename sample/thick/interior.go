// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package thick

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/geom"
)

// SampleInterior fills f.Inner with an equilateral-triangle grid at
// the given spacing, rotated so the pattern is invariant under
// translation of the source island (spec.md 4.7).
func SampleInterior(f Field, spacing float64) []geom.Point {
	if spacing <= 0 || len(f.Inner.Contour) < 3 {
		return nil
	}
	contour := f.Inner.Contour
	centroid := contourCentroid(contour)
	farthest := farthestVertex(contour, centroid)
	theta := math.Atan2(float64(farthest.Y-centroid.Y), float64(farthest.X-centroid.X))

	rotated := rotatePolygon(contour, centroid, -theta)
	bounds := rotated.Bounds()

	h := spacing * math.Sqrt(3) / 2
	var out []geom.Point
	row := 0
	for y := float64(bounds.Min.Y) + h/2; y <= float64(bounds.Max.Y); y += h {
		rowOffset := 0.0
		if row%2 == 1 {
			rowOffset = spacing / 2
		}
		intervals := horizontalIntervals(rotated, y)
		for _, iv := range intervals {
			xStart := math.Ceil((iv[0]-rowOffset)/spacing)*spacing + rowOffset
			for x := xStart; x <= iv[1]; x += spacing {
				out = append(out, geom.Pt(int64(x), int64(y)))
			}
		}
		row++
	}

	// rotate back and filter against the real inset polygon-with-holes
	result := make([]geom.Point, 0, len(out))
	for _, p := range out {
		rp := geom.FromR2(rotateR2(p.R2(), centroid.R2(), theta))
		if f.Inner.Contains(rp) {
			result = append(result, rp)
		}
	}
	return result
}

func contourCentroid(p geom.Polygon) geom.Point {
	var cx, cy float64
	for _, v := range p {
		cx += float64(v.X)
		cy += float64(v.Y)
	}
	n := float64(len(p))
	return geom.Pt(int64(cx/n), int64(cy/n))
}

func farthestVertex(p geom.Polygon, from geom.Point) geom.Point {
	best, bestD := p[0], -1.0
	for _, v := range p {
		d := v.DistanceTo(from)
		if d > bestD {
			bestD, best = d, v
		}
	}
	return best
}

func rotatePolygon(p geom.Polygon, center geom.Point, theta float64) geom.Polygon {
	out := make(geom.Polygon, len(p))
	c := center.R2()
	for i, v := range p {
		out[i] = geom.FromR2(rotateR2(v.R2(), c, theta))
	}
	return out
}

func rotateR2(v, center r2.Point, theta float64) r2.Point {
	d := v.Sub(center)
	cos, sin := math.Cos(theta), math.Sin(theta)
	rd := r2.Point{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos}
	return center.Add(rd)
}

// horizontalIntervals returns the x-ranges where the horizontal line
// y intersects the polygon's interior.
func horizontalIntervals(p geom.Polygon, y float64) [][2]float64 {
	var xs []float64
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay <= y && by > y) || (by <= y && ay > y) {
			t := (y - ay) / (by - ay)
			x := float64(a.X) + t*(float64(b.X)-float64(a.X))
			xs = append(xs, x)
		}
	}
	if len(xs) < 2 {
		return nil
	}
	sortFloats(xs)
	var out [][2]float64
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, [2]float64{xs[i], xs[i+1]})
	}
	return out
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
