// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sliceio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/resinforge/islandskel/geom"
)

func TestIslandDumpRoundTrip(t *testing.T) {
	want := IslandDump{
		ObjectID:    7,
		TotalHeight: 12.5,
		Slices: []Slice{
			{Height: 0, Polygon: geom.Polygon{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}},
			{Height: 1.5, Polygon: geom.Polygon{geom.Pt(1, 1), geom.Pt(9, 1), geom.Pt(9, 9)}},
		},
	}
	var buf bytes.Buffer
	if err := WriteIslandDump(&buf, want); err != nil {
		t.Fatalf("WriteIslandDump() error = %v", err)
	}
	got, err := ReadIslandDump(&buf)
	if err != nil {
		t.Fatalf("ReadIslandDump() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadIslandDump() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIslandDumpPointBeforePolygonErrors(t *testing.T) {
	r := strings.NewReader("OBJECT_ID 1\nPOINT 0 0\n")
	if _, err := ReadIslandDump(r); err == nil {
		t.Error("ReadIslandDump(POINT before POLYGON_AT_HEIGHT) error = nil, want non-nil")
	}
}

func TestReadIslandDumpUnknownKeyword(t *testing.T) {
	r := strings.NewReader("BOGUS 1\n")
	if _, err := ReadIslandDump(r); err == nil {
		t.Error("ReadIslandDump(unknown keyword) error = nil, want non-nil")
	}
}

func TestPrinterDumpRoundTrip(t *testing.T) {
	want := PrinterDump{
		IslandDump: IslandDump{
			ObjectID:    3,
			TotalHeight: 20,
			Slices:      []Slice{{Height: 0, Polygon: geom.Polygon{geom.Pt(0, 0), geom.Pt(5, 0)}}},
		},
		ConvexHeight: 18,
		BoxHeight:    20,
		XSize:        200,
		YSize:        200,
	}
	var buf bytes.Buffer
	if err := WritePrinterDump(&buf, want); err != nil {
		t.Fatalf("WritePrinterDump() error = %v", err)
	}
	got, err := ReadPrinterDump(&buf)
	if err != nil {
		t.Fatalf("ReadPrinterDump() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadPrinterDump() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportDumpRoundTrip(t *testing.T) {
	want := []ImportRecord{
		{OriginalIndex: 0, Point: geom.Pt(1, 2)},
		{OriginalIndex: 3, Point: geom.Pt(-5, 100)},
	}
	var buf bytes.Buffer
	if err := WriteImportDump(&buf, want); err != nil {
		t.Fatalf("WriteImportDump() error = %v", err)
	}
	got, err := ReadImportDump(&buf)
	if err != nil {
		t.Fatalf("ReadImportDump() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadImportDump() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadImportDumpMalformedLine(t *testing.T) {
	r := strings.NewReader("0 1\n")
	if _, err := ReadImportDump(r); err == nil {
		t.Error("ReadImportDump(malformed line) error = nil, want non-nil")
	}
}
