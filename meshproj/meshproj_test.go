// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshproj

import (
	"testing"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/support"
)

type flatSurface struct {
	z    float64
	xMax float64
}

func (f flatSurface) HeightAt(x, y float64) (float64, bool) {
	if x > f.xMax {
		return 0, false
	}
	return f.z, true
}

func TestProjectLiftsHits(t *testing.T) {
	points := []support.Point{
		{Pos: geom.Pt(1, 1), Kind: support.OneCenter},
		{Pos: geom.Pt(2, 2), Kind: support.ThickInner},
	}
	out := Project(points, flatSurface{z: 5, xMax: 100})
	if len(out) != 2 {
		t.Fatalf("Project() returned %d points, want 2", len(out))
	}
	for _, p := range out {
		if p.Z != 5 {
			t.Errorf("Project() Z = %v, want 5", p.Z)
		}
	}
}

func TestProjectDropsMisses(t *testing.T) {
	points := []support.Point{
		{Pos: geom.Pt(1, 1), Kind: support.OneCenter},
		{Pos: geom.Pt(1000, 1), Kind: support.OneCenter},
	}
	out := Project(points, flatSurface{z: 5, xMax: 100})
	if len(out) != 1 {
		t.Fatalf("Project() returned %d points, want 1 (one miss dropped)", len(out))
	}
}
