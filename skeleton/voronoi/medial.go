// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

// ErrNoInteriorEdges is returned when the restricted diagram of the
// boundary segments produces no edges lying inside the island - the
// segment list self-intersects, is degenerate, or the sampling density
// was too coarse to resolve any interior structure.
var ErrNoInteriorEdges = errors.New("voronoi: diagram produced no interior edges")

// Edge is one segment of the restricted Voronoi diagram: a straight
// span between two diagram vertices (circumcenters of Delaunay
// triangles), annotated with the indices of the two boundary segments
// whose cells it separates and sampled min/max half-width-derived
// widths along its length.
type Edge struct {
	A, B         r2.Point
	SrcA, SrcB   int     // boundary segment indices of the two adjacent cells
	WidthSamples []WidthSample
}

// WidthSample is one point along an Edge's polyline (parametrized by
// t in [0,1] from A to B) carrying twice the nearest-boundary distance
// at that point. Because our diagram vertices are exact nearest-point
// distances rather than the ambiguous equidistant sets an exact
// segment Voronoi diagram can produce, the per-point width is single-
// valued; Edge.MinWidth/MaxWidth report the min/max of this profile
// over the whole edge, matching spec.md 4.1's two edge-level scalars.
type WidthSample struct {
	T     float64
	Width float64
}

// Skeleton is the restricted planar Voronoi diagram of a set of
// boundary segments: the medial-axis approximation consumed by
// package skeleton to build a SkeletonGraph.
type Skeleton struct {
	Edges []Edge
}

// defaultSamplesPerSegment controls how densely each boundary segment is
// discretized before triangulation. Higher values resolve narrower
// necks at the cost of triangulation size; spec.md 4.1 only requires
// "dense enough that the two half-width functions are piecewise-linear
// within tolerance", so this is a tunable rather than an exact bound.
const defaultSamplesPerSegment = 6

// BuildMedialAxis computes the restricted Voronoi diagram of boundary
// (a closed, possibly multiply-connected, set of directed segments -
// contour then holes) by densely sampling the boundary, triangulating
// the samples, and keeping the dual Voronoi edges whose two defining
// sites do not come from the same or an adjacent sample on one
// segment - the standard "Voronoi of boundary samples" medial-axis
// extraction. contains reports whether a point lies inside the
// island, used to discard exterior diagram vertices.
func BuildMedialAxis(boundary []r2.Point, segOf []int, contains func(r2.Point) bool) (*Skeleton, error) {
	sites, siteSeg, siteOrd := sampleBoundary(boundary, segOf)
	if len(sites) < 3 {
		return nil, ErrInsufficientSites
	}

	tri, err := Triangulate(sites)
	if err != nil {
		return nil, err
	}

	type edgeKeyT = edgeKey
	seen := make(map[edgeKeyT]bool)
	sk := &Skeleton{}

	for ti, t := range tri.Triangles {
		for e := 0; e < 3; e++ {
			va, vb := t[e], t[(e+1)%3]
			k := makeEdgeKey(va, vb)
			if seen[k] {
				continue
			}
			seen[k] = true

			if sameOrAdjacentSample(siteSeg, siteOrd, va, vb, len(boundary)) {
				continue // boundary-hugging edge, not medial
			}

			other, found := findOppositeTriangle(tri, ti, va, vb)
			if !found {
				continue // hull edge: no second triangle
			}

			ca := Circumcenter(sites[t[0]], sites[t[1]], sites[t[2]])
			ot := tri.Triangles[other]
			cb := Circumcenter(sites[ot[0]], sites[ot[1]], sites[ot[2]])

			insideA, insideB := contains(ca), contains(cb)
			if !insideA && !insideB {
				continue
			}

			edge := Edge{A: ca, B: cb, SrcA: siteSeg[va], SrcB: siteSeg[vb]}
			edge.WidthSamples = sampleWidths(edge, boundary, segOf)
			sk.Edges = append(sk.Edges, edge)
		}
	}

	if len(sk.Edges) == 0 {
		return nil, ErrNoInteriorEdges
	}
	return sk, nil
}

// Circumcenter returns the center of the circle through a, b, c.
func Circumcenter(a, b, c r2.Point) r2.Point {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return r2.Point{X: (ax + bx + cx) / 3, Y: (ay + by + cy) / 3}
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	return r2.Point{X: ux, Y: uy}
}

func sampleBoundary(boundary []r2.Point, segOf []int) (sites []r2.Point, siteSeg, siteOrd []int) {
	n := len(boundary)
	for i := 0; i < n; i++ {
		a, b := boundary[i], boundary[(i+1)%n]
		seg := segOf[i]
		length := b.Sub(a).Norm()
		count := defaultSamplesPerSegment
		if length == 0 {
			count = 1
		}
		for s := 0; s < count; s++ {
			t := float64(s) / float64(count)
			sites = append(sites, a.Add(b.Sub(a).Mul(t)))
			siteSeg = append(siteSeg, seg)
			siteOrd = append(siteOrd, s)
		}
	}
	return sites, siteSeg, siteOrd
}

// sameOrAdjacentSample reports whether sites va, vb are the same site
// or neighbours in sample order (site indices differing by one). The
// wrap from the last sample back to the first is not treated as
// adjacent, and siteSeg/siteOrd are not consulted.
func sameOrAdjacentSample(siteSeg, siteOrd []int, va, vb, _ int) bool {
	if va == vb {
		return true
	}
	diff := va - vb
	if diff == 1 || diff == -1 {
		return true
	}
	return false
}

func findOppositeTriangle(tri *Triangulation, ti, va, vb int) (int, bool) {
	for _, cand := range tri.IncidentTriangles(va) {
		if cand == ti {
			continue
		}
		t := tri.Triangles[cand]
		if hasVertex(t, vb) {
			return cand, true
		}
	}
	return 0, false
}

func hasVertex(t [3]int, v int) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// sampleWidths buckets the edge A->B into a handful of parametric
// samples and, at each, records twice the nearest distance to the
// boundary polyline, giving the piecewise-linear width profile
// spec.md 4.1 requires.
func sampleWidths(e Edge, boundary []r2.Point, segOf []int) []WidthSample {
	const steps = 5
	out := make([]WidthSample, 0, steps+1)
	n := len(boundary)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := e.A.Add(e.B.Sub(e.A).Mul(t))
		minD := math.Inf(1)
		for s := 0; s < n; s++ {
			a, b := boundary[s], boundary[(s+1)%n]
			d := distancePointSegment(p, a, b)
			if d < minD {
				minD = d
			}
		}
		out = append(out, WidthSample{T: t, Width: 2 * minD})
	}
	return out
}

// MinWidth returns the minimum width over the edge's sampled profile.
func (e Edge) MinWidth() float64 {
	m := math.Inf(1)
	for _, s := range e.WidthSamples {
		if s.Width < m {
			m = s.Width
		}
	}
	return m
}

// MaxWidth returns the maximum width over the edge's sampled profile.
func (e Edge) MaxWidth() float64 {
	m := 0.0
	for _, s := range e.WidthSamples {
		if s.Width > m {
			m = s.Width
		}
	}
	return m
}

// WidthAt linearly interpolates the width profile at parameter t in [0,1].
func (e Edge) WidthAt(t float64) float64 {
	ws := e.WidthSamples
	if len(ws) == 0 {
		return 0
	}
	if t <= ws[0].T {
		return ws[0].Width
	}
	for i := 1; i < len(ws); i++ {
		if t <= ws[i].T {
			span := ws[i].T - ws[i-1].T
			if span == 0 {
				return ws[i].Width
			}
			frac := (t - ws[i-1].T) / span
			return ws[i-1].Width + frac*(ws[i].Width-ws[i-1].Width)
		}
	}
	return ws[len(ws)-1].Width
}

func distancePointSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0 {
		return p.Sub(a).Norm()
	}
	t := p.Sub(a).Dot(ab) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Mul(t))
	return p.Sub(proj).Norm()
}
