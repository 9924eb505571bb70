// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package propagate carries support points between adjacent print
// layers: a point already supported by the layer below does not need
// a fresh point of its own (spec.md §1, "layer-to-layer propagation").
// The previous layer's points are indexed in a k-d tree so the
// coverage check on the current layer is a nearest-neighbor query
// rather than an O(n*m) scan.
package propagate

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/support"
)

// CoverageIndex answers "is this location already supported by a
// point on the layer below" queries against a fixed set of points.
type CoverageIndex struct {
	tree *kdtree.Tree
	n    int
}

// NewCoverageIndex builds an index over a layer's accepted support
// points. A nil or empty points slice yields an index that covers
// nothing, so the first printed layer behaves correctly with no
// special-casing at the call site.
func NewCoverageIndex(points []support.Point) *CoverageIndex {
	if len(points) == 0 {
		return &CoverageIndex{}
	}
	pts := make(kdtree.Points, len(points))
	for i, p := range points {
		pts[i] = kdtree.Point{float64(p.Pos.X), float64(p.Pos.Y)}
	}
	return &CoverageIndex{tree: kdtree.New(pts, false), n: len(points)}
}

// Covers reports whether p lies within radius of some point already
// indexed.
func (c *CoverageIndex) Covers(p geom.Point, radius float64) bool {
	if c == nil || c.tree == nil || c.n == 0 {
		return false
	}
	_, dist2 := c.tree.Nearest(kdtree.Point{float64(p.X), float64(p.Y)})
	return dist2 <= radius*radius
}

// Propagator runs the sampler for one layer part and filters its
// output against the previous layer's CoverageIndex. Its zero value
// is ready to use.
type Propagator struct{}

// SupportLayer samples island and drops any resulting point already
// covered by previous, returning only the points this layer newly
// needs. previous may be nil for the first layer. SupportLayer takes
// a context so the outer layer-to-layer driver can run it
// concurrently across independent layer parts and cancel the batch
// (spec.md §5): ctx is polled once per candidate point, not inside
// the sampler itself, which remains single-threaded and pure.
func (Propagator) SupportLayer(ctx context.Context, island geom.ExPolygon, previous *CoverageIndex, coverageRadius float64, cfg support.SampleConfig) ([]support.Point, error) {
	points, err := support.SampleIsland(island, cfg)
	if points == nil && err != nil {
		return nil, err
	}

	var kept []support.Point
	for _, p := range points {
		if err := ctx.Err(); err != nil {
			return kept, err
		}
		if previous.Covers(p.Pos, coverageRadius) {
			continue
		}
		kept = append(kept, p)
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Pos.X != kept[j].Pos.X {
			return kept[i].Pos.X < kept[j].Pos.X
		}
		return kept[i].Pos.Y < kept[j].Pos.Y
	})
	return kept, err
}
