// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package thick

import (
	"testing"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/segment"
)

func square(side int64) geom.Polygon {
	return geom.Polygon{geom.Pt(0, 0), geom.Pt(side, 0), geom.Pt(side, side), geom.Pt(0, side)}
}

func TestBuildFieldWholeContourOwned(t *testing.T) {
	island := geom.ExPolygon{Contour: square(100)}
	part := segment.ThickPart{SourceSegments: map[int]bool{0: true, 1: true, 2: true, 3: true}}
	f, err := BuildField(island, part, 5)
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}
	if len(f.Border.Contour) != 4 {
		t.Fatalf("Border.Contour has %d points, want 4", len(f.Border.Contour))
	}
	for i, o := range f.IsOutline {
		if !o {
			t.Errorf("IsOutline[%d] = false, want true when every segment is owned", i)
		}
	}
	if len(f.Inner.Contour) == 0 {
		t.Error("Inner.Contour is empty after inset")
	}
}

func TestBuildFieldPartialRunAddsChord(t *testing.T) {
	island := geom.ExPolygon{Contour: square(100)}
	part := segment.ThickPart{SourceSegments: map[int]bool{0: true, 1: true}}
	f, err := BuildField(island, part, 5)
	if err != nil {
		t.Fatalf("BuildField() error = %v", err)
	}
	// two owned edges plus one closing chord = 3 points
	if len(f.Border.Contour) != 3 {
		t.Fatalf("Border.Contour has %d points, want 3", len(f.Border.Contour))
	}
	var sawChord bool
	for _, o := range f.IsOutline {
		if !o {
			sawChord = true
		}
	}
	if !sawChord {
		t.Error("IsOutline has no transition-chord entry for a partial run")
	}
}

func TestBuildFieldNoOwnedSegmentsErrors(t *testing.T) {
	island := geom.ExPolygon{Contour: square(100)}
	part := segment.ThickPart{SourceSegments: map[int]bool{}}
	_, err := BuildField(island, part, 5)
	if err != ErrEmptyField {
		t.Errorf("BuildField() error = %v, want ErrEmptyField", err)
	}
}

func TestMaximalRunsAllOwnedIsSingleRun(t *testing.T) {
	r := ring{poly: square(10)}
	runs := maximalRuns(r, map[int]bool{0: true, 1: true, 2: true, 3: true})
	if len(runs) != 1 || len(runs[0].pts) != 4 {
		t.Fatalf("maximalRuns() = %+v, want one 4-point run", runs)
	}
}

func TestOrientLoopFlipsWhenMismatched(t *testing.T) {
	pts := square(10)
	isOutline := []bool{true, true, true, true}
	orientLoop(&pts, &isOutline, !pts.IsCCW())
	if pts.IsCCW() == square(10).IsCCW() {
		t.Error("orientLoop() did not flip winding when asked for the opposite orientation")
	}
}
