// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package thick

import (
	"testing"

	"github.com/resinforge/islandskel/geom"
)

func TestSampleChainSpacing(t *testing.T) {
	chain := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}
	out := sampleChain(chain, 10, false)
	if len(out) != 10 {
		t.Fatalf("sampleChain() produced %d points, want 10", len(out))
	}
	if out[0].ArcLen != 5 {
		t.Errorf("first sample ArcLen = %v, want 5 (half spacing)", out[0].ArcLen)
	}
}

func TestSampleChainZeroLength(t *testing.T) {
	chain := []geom.Point{geom.Pt(5, 5), geom.Pt(5, 5)}
	if out := sampleChain(chain, 10, false); out != nil {
		t.Errorf("sampleChain(degenerate) = %v, want nil", out)
	}
}

func TestSampleOutlineAllOutline(t *testing.T) {
	f := Field{
		Border:    geom.ExPolygon{Contour: square(100)},
		Inner:     geom.ExPolygon{Contour: square(90)},
		IsOutline: []bool{true, true, true, true},
	}
	out := SampleOutline(f, 20)
	if len(out) == 0 {
		t.Fatal("SampleOutline() produced no points for an all-outline field")
	}
	for _, s := range out {
		if !f.Inner.Contains(s.Pos) && !onBoundary(f.Inner.Contour, s.Pos) {
			t.Errorf("sample %v not on/inside the inner contour", s.Pos)
		}
	}
}

func TestSampleOutlineZeroSpacing(t *testing.T) {
	f := Field{Border: geom.ExPolygon{Contour: square(100)}, Inner: geom.ExPolygon{Contour: square(90)}, IsOutline: []bool{true, true, true, true}}
	if out := SampleOutline(f, 0); out != nil {
		t.Errorf("SampleOutline(spacing=0) = %v, want nil", out)
	}
}

func onBoundary(p geom.Polygon, pt geom.Point) bool {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		l := geom.Line{A: a, B: b}
		if l.DistanceToPoint(pt) < 1e-6 {
			return true
		}
	}
	return false
}
