// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sliceio reads and writes the line-oriented dump formats
// spec.md §6 names as the persisted interchange with outside tooling:
// island dumps, printer geometry dumps, and import dumps. Every format
// is whitespace-separated keyword records, one per line, parsed with
// bufio.Scanner and strconv - no binary framing or schema library is
// warranted for a plain-text interchange format this small.
package sliceio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/resinforge/islandskel/geom"
)

// Slice is one POLYGON_AT_HEIGHT record and the POINT records that
// follow it, read until the next POLYGON_AT_HEIGHT or end of input.
type Slice struct {
	Height  float64
	Polygon geom.Polygon
}

// IslandDump is the OBJECT_ID / TOTAL_HEIGHT / POLYGON_AT_HEIGHT /
// POINT record stream of spec.md §6.
type IslandDump struct {
	ObjectID    int
	TotalHeight float64
	Slices      []Slice
}

// WriteIslandDump writes d in the keyword-record format. Errors from
// the underlying writer abort the write and are returned as-is.
func WriteIslandDump(w io.Writer, d IslandDump) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OBJECT_ID %d\n", d.ObjectID)
	fmt.Fprintf(bw, "TOTAL_HEIGHT %s\n", formatFloat(d.TotalHeight))
	for _, s := range d.Slices {
		writeSlice(bw, s)
	}
	return bw.Flush()
}

func writeSlice(bw *bufio.Writer, s Slice) {
	fmt.Fprintf(bw, "POLYGON_AT_HEIGHT %s\n", formatFloat(s.Height))
	for _, p := range s.Polygon {
		fmt.Fprintf(bw, "POINT %d %d\n", p.X, p.Y)
	}
}

// ReadIslandDump parses an island dump. Records are read in whatever
// order they appear; repeated OBJECT_ID/TOTAL_HEIGHT lines overwrite
// the previous value rather than erroring, matching the rest of the
// module's "last write wins" tolerance for duplicate input.
func ReadIslandDump(r io.Reader) (IslandDump, error) {
	var d IslandDump
	cur := -1
	err := scanRecords(r, func(keyword string, fields []string) error {
		switch keyword {
		case "OBJECT_ID":
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("sliceio: OBJECT_ID: %w", err)
			}
			d.ObjectID = v
		case "TOTAL_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: TOTAL_HEIGHT: %w", err)
			}
			d.TotalHeight = v
		case "POLYGON_AT_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: POLYGON_AT_HEIGHT: %w", err)
			}
			d.Slices = append(d.Slices, Slice{Height: v})
			cur = len(d.Slices) - 1
		case "POINT":
			p, err := parsePoint(fields)
			if err != nil {
				return err
			}
			if cur < 0 {
				return fmt.Errorf("sliceio: POINT record before any POLYGON_AT_HEIGHT")
			}
			d.Slices[cur].Polygon = append(d.Slices[cur].Polygon, p)
		default:
			return fmt.Errorf("sliceio: unrecognized keyword %q", keyword)
		}
		return nil
	})
	return d, err
}

// PrinterDump extends IslandDump with the printer-geometry fields
// spec.md §6 layers on top: convex hull height, bounding-box height,
// and the build plate's X/Y size.
type PrinterDump struct {
	IslandDump
	ConvexHeight float64
	BoxHeight    float64
	XSize, YSize int64
}

func WritePrinterDump(w io.Writer, d PrinterDump) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OBJECT_ID %d\n", d.ObjectID)
	fmt.Fprintf(bw, "TOTAL_HEIGHT %s\n", formatFloat(d.TotalHeight))
	fmt.Fprintf(bw, "CONVEX_HEIGHT %s\n", formatFloat(d.ConvexHeight))
	fmt.Fprintf(bw, "BOX_HEIGHT %s\n", formatFloat(d.BoxHeight))
	fmt.Fprintf(bw, "X_SIZE %d\n", d.XSize)
	fmt.Fprintf(bw, "Y_SIZE %d\n", d.YSize)
	for _, s := range d.Slices {
		writeSlice(bw, s)
	}
	return bw.Flush()
}

func ReadPrinterDump(r io.Reader) (PrinterDump, error) {
	var d PrinterDump
	cur := -1
	err := scanRecords(r, func(keyword string, fields []string) error {
		switch keyword {
		case "CONVEX_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: CONVEX_HEIGHT: %w", err)
			}
			d.ConvexHeight = v
		case "BOX_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: BOX_HEIGHT: %w", err)
			}
			d.BoxHeight = v
		case "X_SIZE":
			v, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return fmt.Errorf("sliceio: X_SIZE: %w", err)
			}
			d.XSize = v
		case "Y_SIZE":
			v, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return fmt.Errorf("sliceio: Y_SIZE: %w", err)
			}
			d.YSize = v
		case "OBJECT_ID":
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("sliceio: OBJECT_ID: %w", err)
			}
			d.ObjectID = v
		case "TOTAL_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: TOTAL_HEIGHT: %w", err)
			}
			d.TotalHeight = v
		case "POLYGON_AT_HEIGHT":
			v, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return fmt.Errorf("sliceio: POLYGON_AT_HEIGHT: %w", err)
			}
			d.Slices = append(d.Slices, Slice{Height: v})
			cur = len(d.Slices) - 1
		case "POINT":
			p, err := parsePoint(fields)
			if err != nil {
				return err
			}
			if cur < 0 {
				return fmt.Errorf("sliceio: POINT record before any POLYGON_AT_HEIGHT")
			}
			d.Slices[cur].Polygon = append(d.Slices[cur].Polygon, p)
		default:
			return fmt.Errorf("sliceio: unrecognized keyword %q", keyword)
		}
		return nil
	})
	return d, err
}

// ImportRecord is one `original_index X Y` line of an import dump: a
// scheduled point carried back in from outside tooling, tagged with
// the index of the island it originated from.
type ImportRecord struct {
	OriginalIndex int
	Point         geom.Point
}

func WriteImportDump(w io.Writer, recs []ImportRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		fmt.Fprintf(bw, "%d %d %d\n", rec.OriginalIndex, rec.Point.X, rec.Point.Y)
	}
	return bw.Flush()
}

func ReadImportDump(r io.Reader) ([]ImportRecord, error) {
	var out []ImportRecord
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("sliceio: malformed import record %q", line)
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("sliceio: original_index: %w", err)
		}
		p, err := parsePoint(fields[1:])
		if err != nil {
			return nil, err
		}
		out = append(out, ImportRecord{OriginalIndex: idx, Point: p})
	}
	return out, sc.Err()
}

func parsePoint(fields []string) (geom.Point, error) {
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("sliceio: POINT: expected 2 fields, got %d", len(fields))
	}
	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("sliceio: POINT: %w", err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("sliceio: POINT: %w", err)
	}
	return geom.Pt(x, y), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// scanRecords reads whitespace-separated keyword records line by
// line, calling fn with the keyword and its remaining fields.
func scanRecords(r io.Reader, fn func(keyword string, fields []string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if err := fn(fields[0], fields[1:]); err != nil {
			return err
		}
	}
	return sc.Err()
}
