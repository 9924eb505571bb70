// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"testing"

	"github.com/golang/geo/r2"
)

func TestTriangulateDegenerateInput(t *testing.T) {
	_, err := Triangulate([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if err == nil {
		t.Error("Triangulate(2 points) error = nil, want ErrInsufficientSites")
	}
}

func TestTriangulateSquareInvariants(t *testing.T) {
	sites := []r2.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5},
	}
	tri, err := Triangulate(sites)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	if len(tri.Triangles) == 0 {
		t.Fatal("Triangulate() produced no triangles")
	}
	for i, tr := range tri.Triangles {
		a, b, c := tri.Sites[tr[0]], tri.Sites[tr[1]], tri.Sites[tr[2]]
		if signedArea(a, b, c) <= 0 {
			t.Errorf("triangle %d is not CCW", i)
		}
	}
	// Every site must appear in the incidence table.
	for v := range sites {
		if len(tri.IncidentTriangles(v)) == 0 {
			t.Errorf("site %d has no incident triangles", v)
		}
	}
}

func TestTriangulateDelaunayProperty(t *testing.T) {
	sites := []r2.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}, {X: 2, Y: 8},
	}
	tri, err := Triangulate(sites)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	for ti, tr := range tri.Triangles {
		a, b, c := tri.Sites[tr[0]], tri.Sites[tr[1]], tri.Sites[tr[2]]
		for v, p := range sites {
			if v == tr[0] || v == tr[1] || v == tr[2] {
				continue
			}
			if pointInCircumcircle(a, b, c, p) {
				t.Errorf("triangle %d's circumcircle contains site %d, violating the Delaunay property", ti, v)
			}
		}
	}
}

func BenchmarkTriangulate(b *testing.B) {
	sites := make([]r2.Point, 0, 200)
	for i := 0; i < 20; i++ {
		for j := 0; j < 10; j++ {
			sites = append(sites, r2.Point{X: float64(i), Y: float64(j)})
		}
	}
	for b.Loop() {
		if _, err := Triangulate(sites); err != nil {
			b.Fatal(err)
		}
	}
}
