// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package align implements the Lloyd-style relaxation of spec.md 4.8:
// iteratively moving each movable support point toward the centroid
// of its island-clipped Voronoi cell.
package align

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/geom/clip"
)

// Movable is the subset of support.Point's behavior this package
// needs, kept as an interface so align does not import package
// support (which itself calls into align from its dispatch code).
type Movable interface {
	Position() geom.Point
	Move(target geom.Point) float64
}

// Config carries the subset of support.SampleConfig the relaxation
// needs.
type Config struct {
	CountIteration int
	MinimalMove    float64
}

// Result reports how the relaxation terminated.
type Result struct {
	Iterations int
	MaxMove    float64
	Converged  bool
}

// Relax runs Lloyd iteration over points, clipped against island,
// until max_move < cfg.MinimalMove or cfg.CountIteration sweeps have
// run (spec.md 4.8).
func Relax(points []Movable, island geom.ExPolygon, cfg Config) Result {
	if len(points) == 0 {
		return Result{Converged: true}
	}
	var result Result
	for iter := 0; iter < cfg.CountIteration; iter++ {
		sites := make([]geom.Point, len(points))
		for i, p := range points {
			sites[i] = p.Position()
		}
		fence := fencePolygon(sites, island.Contour.Bounds())
		cells := voronoiCells(sites, fence)

		maxMove := 0.0
		for i, p := range points {
			centroid, ok := clip.ClipExPolygonPiece(island, cells[i], sites[i])
			target := sites[i]
			if ok {
				target = centroid
			}
			if d := p.Move(target); d > maxMove {
				maxMove = d
			}
		}
		resolveDuplicates(points)

		result.Iterations = iter + 1
		result.MaxMove = maxMove
		if maxMove < cfg.MinimalMove {
			result.Converged = true
			break
		}
	}
	return result
}

// fencePolygon bounds the otherwise-unbounded Voronoi cells: the
// convex hull of the sites (convexHull2D, a monotone-chain hull),
// expanded outward so every bounded island-clipped cell is unaffected.
func fencePolygon(sites []geom.Point, islandBounds geom.Box) geom.Polygon {
	hull := convexHull2D(sites)
	margin := boxDiagonal(islandBounds) + 1
	if len(hull) < 3 {
		c := islandBounds.Center()
		return geom.Polygon{
			geom.Pt(c.X-int64(margin), c.Y-int64(margin)),
			geom.Pt(c.X+int64(margin), c.Y-int64(margin)),
			geom.Pt(c.X+int64(margin), c.Y+int64(margin)),
			geom.Pt(c.X-int64(margin), c.Y+int64(margin)),
		}
	}
	return clip.Offset(hull, margin)
}

func boxDiagonal(b geom.Box) float64 {
	return b.Min.DistanceTo(b.Max) + 1
}

func convexHull2D(pts []geom.Point) geom.Polygon {
	if len(pts) < 3 {
		return nil
	}
	uniq := append([]geom.Point{}, pts...)
	sortPoints(uniq)
	var lower, upper []geom.Point
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(geom.Polygon(lower), upper...)
}

func sortPoints(pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && less(pts[j], pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func less(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func cross(a, b, c geom.Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// voronoiCells computes each site's Voronoi cell as the intersection
// of the fence with every bisecting half-plane against the other
// sites - an O(n^2) half-plane intersection, simple and exact for the
// modest point counts a single island's support set contains.
func voronoiCells(sites []geom.Point, fence geom.Polygon) []geom.Polygon {
	cells := make([]geom.Polygon, len(sites))
	diag := math.Max(1, polyDiagonal(fence))
	big := diag * 4
	for i, s := range sites {
		cell := fence
		for j, t := range sites {
			if i == j {
				continue
			}
			cell = clip.ConvexClip(cell, bisectorHalfPlane(s, t, big))
			if len(cell) == 0 {
				break
			}
		}
		cells[i] = cell
	}
	return cells
}

func polyDiagonal(p geom.Polygon) float64 {
	b := p.Bounds()
	return b.Min.DistanceTo(b.Max)
}

// bisectorHalfPlane returns a large quadrilateral approximating the
// half-plane of points at least as close to s as to t.
func bisectorHalfPlane(s, t geom.Point, big float64) geom.Polygon {
	sv, tv := s.R2(), t.R2()
	mid := sv.Add(tv).Mul(0.5)
	dir := tv.Sub(sv)
	length := dir.Norm()
	if length == 0 {
		length = 1
	}
	d := dir.Mul(1/length)
	n := r2.Point{X: -d.Y, Y: d.X}

	p1 := mid.Add(n.Mul(big))
	p2 := mid.Sub(n.Mul(big))
	p3 := p2.Sub(d.Mul(big))
	p4 := p1.Sub(d.Mul(big))

	poly := geom.Polygon{geom.FromR2(p1), geom.FromR2(p2), geom.FromR2(p3), geom.FromR2(p4)}
	if !poly.IsCCW() {
		poly[0], poly[1], poly[2], poly[3] = poly[3], poly[2], poly[1], poly[0]
	}
	return poly
}

// resolveDuplicates asks any point whose position exactly matches an
// earlier point's to Move to nudged(pos, i): the shared position shifted
// by at most one unit per axis, chosen from the point's index. It
// repeats for up to four passes or until all positions are distinct.
// Positions from before the alignment step are not tracked, so a
// duplicate is not moved back toward where it started.
func resolveDuplicates(points []Movable) {
	for pass := 0; pass < 4; pass++ {
		seen := map[geom.Point]int{}
		for i, p := range points {
			pos := p.Position()
			if _, ok := seen[pos]; ok {
				points[i].Move(nudged(pos, i))
				continue
			}
			seen[pos] = i
		}
		clean := true
		seen = map[geom.Point]int{}
		for _, p := range points {
			pos := p.Position()
			if _, ok := seen[pos]; ok {
				clean = false
				break
			}
			seen[pos] = 1
		}
		if clean {
			return
		}
	}
}

func nudged(p geom.Point, salt int) geom.Point {
	return geom.Pt(p.X+int64(salt%3)-1, p.Y+int64((salt/3)%3)-1)
}
