// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi computes the planar Delaunay triangulation and its
// dual Voronoi diagram for a set of point sites. It mirrors the
// index/offset ("CSR") layout used by spherical Delaunay/Voronoi
// construction elsewhere in the ecosystem: triangles and per-vertex
// incidence are flat integer slices rather than pointer graphs, so a
// diagram can be copied, indexed and twin-linked cheaply.
package voronoi

import (
	"errors"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// ErrInsufficientSites is returned when fewer than 3 sites are given.
var ErrInsufficientSites = errors.New("voronoi: insufficient sites for triangulation (minimum 3 required)")

// Triangulation is a planar Delaunay triangulation in CSR form.
type Triangulation struct {
	Sites     []r2.Point
	Triangles [][3]int
	// IncidentTriangleIndices/Offsets: for vertex v, the triangles
	// touching it are IncidentTriangleIndices[Offsets[v]:Offsets[v+1]],
	// sorted counterclockwise around v.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the triangle indices touching site vIdx.
func (t *Triangulation) IncidentTriangles(vIdx int) []int {
	start := t.IncidentTriangleOffsets[vIdx]
	end := t.IncidentTriangleOffsets[vIdx+1]
	return t.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the three site coordinates of triangle tIdx.
func (t *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	tri := t.Triangles[tIdx]
	return t.Sites[tri[0]], t.Sites[tri[1]], t.Sites[tri[2]]
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Triangulate computes the Delaunay triangulation of sites using the
// Bowyer-Watson incremental algorithm.
func Triangulate(sites []r2.Point) (*Triangulation, error) {
	if len(sites) < 3 {
		return nil, ErrInsufficientSites
	}

	// Work in an extended point set with three super-triangle corners
	// appended, large enough to strictly contain every site.
	minX, minY := sites[0].X, sites[0].Y
	maxX, maxY := minX, minY
	for _, p := range sites {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	margin := 20 * max(dx, dy)
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	superA := r2.Point{X: cx - margin, Y: cy - margin}
	superB := r2.Point{X: cx + margin, Y: cy - margin}
	superC := r2.Point{X: cx, Y: cy + margin*2}

	points := make([]r2.Point, len(sites)+3)
	copy(points, sites)
	n := len(sites)
	points[n], points[n+1], points[n+2] = superA, superB, superC

	triangles := [][3]int{{n, n + 1, n + 2}}

	for pi := 0; pi < n; pi++ {
		p := points[pi]
		var bad []int
		for ti, tri := range triangles {
			if pointInCircumcircle(points[tri[0]], points[tri[1]], points[tri[2]], p) {
				bad = append(bad, ti)
			}
		}
		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}

		edgeCount := map[edgeKey]int{}
		edgeOrder := map[edgeKey][2]int{}
		for _, ti := range bad {
			tri := triangles[ti]
			for _, e := range [][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}} {
				k := makeEdgeKey(e[0], e[1])
				edgeCount[k]++
				edgeOrder[k] = e
			}
		}

		var next [][3]int
		for ti, tri := range triangles {
			if !badSet[ti] {
				next = append(next, tri)
			}
		}
		for k, cnt := range edgeCount {
			if cnt != 1 {
				continue // shared by two bad triangles: interior to the hole
			}
			e := edgeOrder[k]
			next = append(next, [3]int{e[0], e[1], pi})
		}
		triangles = next
	}

	// Drop triangles touching a super-triangle corner.
	final := triangles[:0]
	for _, tri := range triangles {
		if tri[0] >= n || tri[1] >= n || tri[2] >= n {
			continue
		}
		final = append(final, tri)
	}

	t := &Triangulation{
		Sites:     sites,
		Triangles: final,
		IncidentTriangleOffsets: make([]int, n+1),
	}
	for i := range t.Triangles {
		orientCCW(&t.Triangles[i], sites)
	}

	counts := make([]int, n)
	for _, tri := range t.Triangles {
		counts[tri[0]]++
		counts[tri[1]]++
		counts[tri[2]]++
	}
	for i := 0; i < n; i++ {
		t.IncidentTriangleOffsets[i+1] = t.IncidentTriangleOffsets[i] + counts[i]
	}
	t.IncidentTriangleIndices = make([]int, t.IncidentTriangleOffsets[n])
	cursor := append([]int{}, t.IncidentTriangleOffsets[:n]...)
	for ti, tri := range t.Triangles {
		for _, v := range tri {
			t.IncidentTriangleIndices[cursor[v]] = ti
			cursor[v]++
		}
	}
	for v := 0; v < n; v++ {
		sortIncidentCCW(v, t.IncidentTriangles(v), t.Triangles, sites)
	}

	return t, nil
}

func pointInCircumcircle(a, b, c, p r2.Point) bool {
	// Standard determinant test; positive means p is inside the
	// circumcircle of a,b,c when a,b,c are CCW.
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	if signedArea(a, b, c) < 0 {
		det = -det
	}
	return det > 0
}

func signedArea(a, b, c r2.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func orientCCW(t *[3]int, sites []r2.Point) {
	if signedArea(sites[t[0]], sites[t[1]], sites[t[2]]) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func nextVertex(t [3]int, v int) int {
	switch v {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("voronoi: vertex not in triangle")
}

// sortIncidentCCW orders the triangles touching vertex v by angle
// around v, so adjacent entries in the slice share an edge.
func sortIncidentCCW(v int, incident []int, triangles [][3]int, sites []r2.Point) {
	center := sites[v]
	sort.Slice(incident, func(i, j int) bool {
		ai := angleAround(center, sites[nextVertex(triangles[incident[i]], v)])
		aj := angleAround(center, sites[nextVertex(triangles[incident[j]], v)])
		return ai < aj
	})
}

func angleAround(center, p r2.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}
