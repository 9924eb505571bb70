// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package support

import (
	"errors"
	"fmt"
	"math"

	"github.com/resinforge/islandskel/align"
	"github.com/resinforge/islandskel/geom"
	"github.com/resinforge/islandskel/path"
	"github.com/resinforge/islandskel/sample/thick"
	"github.com/resinforge/islandskel/sample/thin"
	"github.com/resinforge/islandskel/segment"
	"github.com/resinforge/islandskel/skeleton"
)

// Peninsula is a newly-unsupported subregion of an island, sampled
// with the thick-part strategy only (spec.md Glossary).
type Peninsula struct {
	UnsupportedArea geom.ExPolygon
	IsOutline       []bool
}

// SampleIsland computes support.Points for island per spec.md 4.9's
// top-level dispatch.
func SampleIsland(island geom.ExPolygon, cfg SampleConfig) ([]Point, error) {
	if err := island.Validate(); err != nil {
		return nil, fmt.Errorf("support: %w", err)
	}

	simplified := island.Simplify(cfg.SimplificationTolerance)
	if err := simplified.Validate(); err != nil {
		simplified = island
	}

	if simplified.Contour.Bounds().FitsInRadius(int64(cfg.HeadRadius)) {
		return []Point{{Pos: simplified.Contour.Bounds().Center(), Kind: OneBBCenter, Variant: Fixed}}, nil
	}

	g, err := skeleton.Build(simplified)
	if err != nil {
		if errors.Is(err, skeleton.ErrVoronoiConstruction) && cfg.PermissiveOnVoronoiError {
			return nil, nil
		}
		return nil, err
	}
	cfg.Observer.skeleton(g)

	contours := g.ContourNodes()
	if len(contours) == 0 {
		return nil, fmt.Errorf("support: %w: no contour node", skeleton.ErrVoronoiConstruction)
	}
	longest := path.Longest(g, contours[0])

	var points []Point
	if longest.Length < cfg.MaxLengthForOneSupportPoint {
		points = []Point{buildSkeletonPoint(g, path.Midpoint(g, longest), OneCenter, cfg.MaxAlignDistance)}
	} else if maxW := path.MaxWidth(g, longest); maxW < cfg.ThinMaxWidth && longest.Length < cfg.MaxLengthForTwoSupportPoints {
		points = twoPointPlacement(g, longest, cfg, TwoPoints)
	} else {
		points, err = segmentAndSample(g, simplified, longest, cfg)
		if err != nil {
			return nil, err
		}
		if len(points) <= 2 {
			points = twoPointPlacement(g, longest, cfg, TwoPointsBackup)
		}
	}
	cfg.Observer.sampling(points)

	movables := make([]align.Movable, len(points))
	for i := range points {
		movables[i] = &points[i]
	}
	res := align.Relax(movables, island, align.Config{CountIteration: cfg.CountIteration, MinimalMove: cfg.MinimalMove})
	cfg.Observer.alignIter(res.Iterations, points, res.MaxMove)

	if !res.Converged {
		return points, fmt.Errorf("support: %w", ErrSamplingConvergence)
	}
	return points, nil
}

// SamplePeninsula samples a peninsula with the thick-part strategy
// only (spec.md 1, Glossary).
func SamplePeninsula(p Peninsula, cfg SampleConfig) ([]Point, error) {
	if err := p.UnsupportedArea.Validate(); err != nil {
		return nil, fmt.Errorf("support: %w", err)
	}
	all := p.UnsupportedArea.Boundary()
	srcSegments := map[int]bool{}
	for i := range all {
		if i < len(p.IsOutline) && p.IsOutline[i] {
			srcSegments[i] = true
		}
	}
	if len(srcSegments) == 0 {
		for i := range all {
			srcSegments[i] = true
		}
	}
	part := segment.ThickPart{SourceSegments: srcSegments}
	field, err := thick.BuildField(p.UnsupportedArea, part, cfg.MinimalDistanceFromOutline)
	if err != nil {
		return nil, fmt.Errorf("support: %w", err)
	}
	points := thickPoints(field, cfg)

	movables := make([]align.Movable, len(points))
	for i := range points {
		movables[i] = &points[i]
	}
	res := align.Relax(movables, p.UnsupportedArea, align.Config{CountIteration: cfg.CountIteration, MinimalMove: cfg.MinimalMove})
	if !res.Converged {
		return points, fmt.Errorf("support: %w", ErrSamplingConvergence)
	}
	return points, nil
}

func segmentAndSample(g *skeleton.Graph, island geom.ExPolygon, longest path.Path, cfg SampleConfig) ([]Point, error) {
	parts, err := segment.Segment(g, segment.Config{
		ThinMaxWidth:  cfg.ThinMaxWidth,
		ThickMinWidth: cfg.ThickMinWidth,
		MinPartLength: cfg.MinPartLength,
	})
	if err != nil {
		return nil, err
	}
	cfg.Observer.segmentation(parts)

	thinParts, thickParts := segment.ToThinThick(g, parts)

	var out []Point
	// Every thin ThinPart's own edge membership isn't carried on the
	// struct; the walk is instead bounded by its Ends nodes, so handing
	// it the whole graph's edge set is safe (sample/thin stops at the
	// first End/already-visited node either way).
	edgeSet := allEdges(g)
	for _, tp := range thinParts {
		samples := thin.Sample(thin.Input{Graph: g, Edges: edgeSet, Center: tp.Center, Ends: tp.Ends, Spacing: cfg.ThinMaxDistance})
		for _, s := range samples {
			out = append(out, buildSkeletonPoint(g, s.Position, thinKind(s.Kind), cfg.MaxAlignDistance))
		}
	}

	for _, tkp := range thickParts {
		field, err := thick.BuildField(island, tkp, cfg.MinimalDistanceFromOutline)
		if err != nil {
			continue
		}
		out = append(out, thickPoints(field, cfg)...)
	}
	return out, nil
}

func thickPoints(field thick.Field, cfg SampleConfig) []Point {
	var out []Point
	for _, s := range thick.SampleOutline(field, cfg.ThickOutlineMaxDistance) {
		out = append(out, Point{
			Pos: s.Pos, Kind: ThickOutline, Variant: Outline,
			OutlineChain: s.Chain, OutlineOriginLen: s.ArcLen, OutlineMaxSlide: cfg.MaxAlignDistance,
		})
	}
	for _, p := range thick.SampleInterior(field, cfg.ThickInnerMaxDistance) {
		out = append(out, Point{Pos: p, Kind: ThickInner, Variant: Interior, InteriorPoly: field.Inner.Contour})
	}
	return out
}

func thinKind(k thin.Kind) Type {
	switch k {
	case thin.End:
		return ThinPartType
	case thin.Loop:
		return ThinPartLoop
	default:
		return ThinPartChange
	}
}

func canonicalEdge(g *skeleton.Graph, ni int) int {
	twin := g.Neighbors[ni].Twin
	if twin < ni {
		return twin
	}
	return ni
}

func allEdges(g *skeleton.Graph) map[int]bool {
	out := map[int]bool{}
	for ni := range g.Neighbors {
		out[canonicalEdge(g, ni)] = true
	}
	return out
}

func buildSkeletonPoint(g *skeleton.Graph, pos skeleton.Position, kind Type, maxAlign float64) Point {
	n := g.Neighbors[pos.Neighbor]
	a := geom.FromR2(g.Nodes[n.From].Pos)
	b := geom.FromR2(g.Nodes[n.Target].Pos)
	maxRatio := 0.0
	if n.Length > 0 {
		maxRatio = maxAlign / n.Length
	}
	return Point{
		Pos: g.Point(pos), Kind: kind, Variant: Skeleton,
		SkelA: a, SkelB: b, SkelOriginRatio: pos.Ratio, SkelMaxRatio: maxRatio,
	}
}

// twoPointPlacement implements spec.md 4.9 step 5: one point inward
// from each end of the longest path, at the first point where local
// width equals 2*head_radius, capped at a configured distance from
// that end.
func twoPointPlacement(g *skeleton.Graph, longest path.Path, cfg SampleConfig, kind Type) []Point {
	target := 2 * cfg.HeadRadius
	capDist := math.Min(longest.Length*cfg.MaxLengthRatioForTwoSupportPoints, cfg.MaximalDistanceFromOutline)
	a := path.FirstCrossingCapped(g, longest, target, capDist)
	b := path.FirstCrossingCappedFromEnd(g, longest, target, capDist)
	return []Point{
		buildSkeletonPoint(g, a, kind, cfg.MaxAlignDistance),
		buildSkeletonPoint(g, b, kind, cfg.MaxAlignDistance),
	}
}
