// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"
	"math"
)

// ErrDegenerateInput is returned when a polygon has too few distinct
// vertices, zero-length edges, or otherwise fails the non-degeneracy
// invariants the rest of the sampler relies on.
var ErrDegenerateInput = errors.New("geom: degenerate polygon input")

// Polygon is an ordered, implicitly-closed sequence of points. Outer
// contours are counterclockwise by convention, holes clockwise.
type Polygon []Point

// Lines returns the polygon's boundary as directed segments, contour
// order preserved, with an implicit closing edge from the last point
// back to the first.
func (p Polygon) Lines() []Line {
	if len(p) < 2 {
		return nil
	}
	lines := make([]Line, len(p))
	for i := range p {
		lines[i] = Line{A: p[i], B: p[(i+1)%len(p)]}
	}
	return lines
}

// SignedArea2 returns twice the signed area (positive for CCW).
func (p Polygon) SignedArea2() int64 {
	var area int64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

// IsCCW reports whether the polygon winds counterclockwise.
func (p Polygon) IsCCW() bool { return p.SignedArea2() > 0 }

// Bounds returns the polygon's axis-aligned bounding box.
func (p Polygon) Bounds() Box {
	b := EmptyBox()
	for _, v := range p {
		b = b.Extend(v)
	}
	return b
}

// Validate checks the non-degeneracy invariants of §3: at least three
// vertices, no zero-length edges.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return ErrDegenerateInput
	}
	for _, l := range p.Lines() {
		if l.A == l.B {
			return ErrDegenerateInput
		}
	}
	return nil
}

// ContainsPoint reports whether p contains q using the winding number
// test (robust to concave polygons; does not distinguish hole membership).
// Points on the boundary count as contained.
func (p Polygon) ContainsPoint(q Point) bool {
	winding := 0
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if isLeftOf(a, b, q) == 0 &&
			min(a.X, b.X) <= q.X && q.X <= max(a.X, b.X) &&
			min(a.Y, b.Y) <= q.Y && q.Y <= max(a.Y, b.Y) {
			return true
		}
		if a.Y <= q.Y {
			if b.Y > q.Y && isLeftOf(a, b, q) > 0 {
				winding++
			}
		} else if b.Y <= q.Y && isLeftOf(a, b, q) < 0 {
			winding--
		}
	}
	return winding != 0
}

func isLeftOf(a, b, q Point) int64 {
	v := (b.X-a.X)*(q.Y-a.Y) - (q.X-a.X)*(b.Y-a.Y)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Simplify runs Douglas-Peucker simplification with the given tolerance
// (nanometers), treating the polygon as a closed ring.
func (p Polygon) Simplify(tolerance float64) Polygon {
	if len(p) < 4 || tolerance <= 0 {
		return append(Polygon{}, p...)
	}
	// Reduce the closed ring to an open chain starting/ending at the
	// point farthest from the centroid, run Douglas-Peucker on the
	// chain, then close it back up.
	start := farthestFromCentroid(p)
	chain := make(Polygon, 0, len(p)+1)
	for i := 0; i <= len(p); i++ {
		chain = append(chain, p[(start+i)%len(p)])
	}
	simplified := douglasPeucker(chain, tolerance)
	if len(simplified) > 1 && simplified[0] == simplified[len(simplified)-1] {
		simplified = simplified[:len(simplified)-1]
	}
	return simplified
}

func farthestFromCentroid(p Polygon) int {
	var cx, cy float64
	for _, v := range p {
		cx += float64(v.X)
		cy += float64(v.Y)
	}
	cx /= float64(len(p))
	cy /= float64(len(p))
	best, bestDist := 0, -1.0
	for i, v := range p {
		dx, dy := float64(v.X)-cx, float64(v.Y)-cy
		d := dx*dx + dy*dy
		if d > bestDist {
			bestDist, best = d, i
		}
	}
	return best
}

func douglasPeucker(chain Polygon, tolerance float64) Polygon {
	if len(chain) < 3 {
		return append(Polygon{}, chain...)
	}
	first, last := chain[0], chain[len(chain)-1]
	maxDist, maxIdx := -1.0, -1
	line := Line{A: first, B: last}
	for i := 1; i < len(chain)-1; i++ {
		d := line.DistanceToPoint(chain[i])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= tolerance {
		return Polygon{first, last}
	}
	left := douglasPeucker(chain[:maxIdx+1], tolerance)
	right := douglasPeucker(chain[maxIdx:], tolerance)
	return append(left[:len(left)-1], right...)
}

// ExPolygon is a contour with zero or more holes, all strictly nested
// inside the contour.
type ExPolygon struct {
	Contour Polygon
	Holes   []Polygon
}

// Boundary returns the full line-indexed boundary: contour segments
// first, then each hole's segments in order. This is the "line-indexed
// boundary" of §3, whose indices skeleton neighbors reference as
// source segment indices.
func (e ExPolygon) Boundary() []Line {
	lines := e.Contour.Lines()
	for _, h := range e.Holes {
		lines = append(lines, h.Lines()...)
	}
	return lines
}

// Validate checks the ExPolygon invariants: non-degenerate contour and
// holes, holes nested inside the contour, at least 3 total segments.
func (e ExPolygon) Validate() error {
	if err := e.Contour.Validate(); err != nil {
		return err
	}
	if !e.Contour.IsCCW() {
		return ErrDegenerateInput
	}
	for _, h := range e.Holes {
		if err := h.Validate(); err != nil {
			return err
		}
		if h.IsCCW() {
			return ErrDegenerateInput
		}
		if !e.Contour.ContainsPoint(h[0]) {
			return ErrDegenerateInput
		}
	}
	if len(e.Boundary()) < 3 {
		return ErrDegenerateInput
	}
	return nil
}

// Contains reports whether q lies inside the contour and outside every
// hole.
func (e ExPolygon) Contains(q Point) bool {
	if !e.Contour.ContainsPoint(q) {
		return false
	}
	for _, h := range e.Holes {
		if h.ContainsPoint(q) {
			return false
		}
	}
	return true
}

// Simplify simplifies the contour and every hole independently,
// dropping holes that collapse to fewer than 3 vertices.
func (e ExPolygon) Simplify(tolerance float64) ExPolygon {
	out := ExPolygon{Contour: e.Contour.Simplify(tolerance)}
	for _, h := range e.Holes {
		sh := h.Simplify(tolerance)
		if len(sh) >= 3 {
			out.Holes = append(out.Holes, sh)
		}
	}
	return out
}

// ClosestPointOnChain returns the closest point to target lying on
// the open polyline chain (not implicitly closed), plus the arc-length
// distance of that point from chain[0] - used to clamp OutlinePoint
// and project toward InteriorPoint movement targets (spec.md 4.8).
func ClosestPointOnChain(chain []Point, target Point) (closest Point, arcLen float64) {
	if len(chain) == 0 {
		return Point{}, 0
	}
	if len(chain) == 1 {
		return chain[0], 0
	}
	bestDist := math.Inf(1)
	walked := 0.0
	for i := 0; i < len(chain)-1; i++ {
		l := Line{A: chain[i], B: chain[i+1]}
		segLen := l.Length()
		t := projectParam(l, target)
		cand := l.PointAt(t)
		d := cand.DistanceTo(target)
		if d < bestDist {
			bestDist = d
			closest = cand
			arcLen = walked + t*segLen
		}
		walked += segLen
	}
	return closest, arcLen
}

// PointAtArcLen walks the open polyline chain for arcLen units from
// chain[0] and returns the point there, clamped to the chain's ends.
func PointAtArcLen(chain []Point, arcLen float64) Point {
	if len(chain) == 0 {
		return Point{}
	}
	if arcLen <= 0 {
		return chain[0]
	}
	walked := 0.0
	for i := 0; i < len(chain)-1; i++ {
		l := Line{A: chain[i], B: chain[i+1]}
		segLen := l.Length()
		if walked+segLen >= arcLen || i == len(chain)-2 {
			t := 0.0
			if segLen > 0 {
				t = (arcLen - walked) / segLen
			}
			if t > 1 {
				t = 1
			}
			return l.PointAt(t)
		}
		walked += segLen
	}
	return chain[len(chain)-1]
}

// ChainLength returns the total arc length of an open polyline chain.
func ChainLength(chain []Point) float64 {
	total := 0.0
	for i := 0; i < len(chain)-1; i++ {
		total += (Line{A: chain[i], B: chain[i+1]}).Length()
	}
	return total
}

func projectParam(l Line, p Point) float64 {
	a, b, q := l.A.R2(), l.B.R2(), p.R2()
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0 {
		return 0
	}
	t := q.Sub(a).Dot(ab) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t
}

// Area returns the polygon's area in square nanometers (contour minus
// holes), as a float64 to avoid overflow on large islands.
func (e ExPolygon) Area() float64 {
	area := math.Abs(float64(e.Contour.SignedArea2())) / 2
	for _, h := range e.Holes {
		area -= math.Abs(float64(h.SignedArea2())) / 2
	}
	return area
}
