// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package support

import (
	"testing"

	"github.com/resinforge/islandskel/geom"
)

func TestPointMoveFixedDoesNotMove(t *testing.T) {
	p := &Point{Pos: geom.Pt(5, 5), Variant: Fixed}
	d := p.Move(geom.Pt(50, 50))
	if d != 0 {
		t.Errorf("Move() on a Fixed point returned displacement %v, want 0", d)
	}
	if p.Pos != geom.Pt(5, 5) {
		t.Errorf("Fixed point moved to %v", p.Pos)
	}
}

func TestPointMoveSkeletonClampsToRatioWindow(t *testing.T) {
	p := &Point{
		Pos: geom.Pt(50, 0), Variant: Skeleton,
		SkelA: geom.Pt(0, 0), SkelB: geom.Pt(100, 0),
		SkelOriginRatio: 0.5, SkelMaxRatio: 0.1,
	}
	p.Move(geom.Pt(100, 0))
	if p.Pos.X < 59 || p.Pos.X > 61 {
		t.Errorf("Move() past the ratio window landed at %v, want x~60", p.Pos)
	}
}

func TestPointMoveOutlineClampsToSlideWindow(t *testing.T) {
	chain := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}
	p := &Point{
		Pos: geom.Pt(50, 0), Variant: Outline,
		OutlineChain: chain, OutlineOriginLen: 50, OutlineMaxSlide: 5,
	}
	p.Move(geom.Pt(100, 0))
	if p.Pos.X < 54 || p.Pos.X > 56 {
		t.Errorf("Move() past the slide window landed at %v, want x~55", p.Pos)
	}
}

func TestPointMoveInteriorInsideStaysAtTarget(t *testing.T) {
	poly := geom.Polygon{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100)}
	p := &Point{Pos: geom.Pt(10, 10), Variant: Interior, InteriorPoly: poly}
	target := geom.Pt(50, 50)
	p.Move(target)
	if p.Pos != target {
		t.Errorf("Move() inside the polygon landed at %v, want %v", p.Pos, target)
	}
}

func TestPointMoveInteriorOutsideClampsToBoundary(t *testing.T) {
	poly := geom.Polygon{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100)}
	p := &Point{Pos: geom.Pt(10, 10), Variant: Interior, InteriorPoly: poly}
	p.Move(geom.Pt(200, 50))
	if !poly.ContainsPoint(p.Pos) {
		t.Errorf("Move() outside the polygon landed outside it: %v", p.Pos)
	}
}

func TestTypeStringKnownAndUnknown(t *testing.T) {
	if got := OneCenter.String(); got != "one_center" {
		t.Errorf("OneCenter.String() = %q, want \"one_center\"", got)
	}
	if got := Type(999).String(); got != "unknown" {
		t.Errorf("Type(999).String() = %q, want \"unknown\"", got)
	}
}
