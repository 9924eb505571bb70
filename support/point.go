// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package support defines the SupportPoint tagged union and the
// top-level dispatch entry points of spec.md 6
// (uniform_support_island / uniform_support_peninsula).
package support

import (
	"github.com/resinforge/islandskel/geom"
)

// Type is the observable type tag of a SupportPoint, preserved in
// output (spec.md 3).
type Type int

const (
	OneBBCenter Type = iota
	OneCenter
	TwoPoints
	TwoPointsBackup
	ThinPartType
	ThinPartChange
	ThinPartLoop
	ThickOutline
	ThickInner
)

func (t Type) String() string {
	switch t {
	case OneBBCenter:
		return "one_bb_center"
	case OneCenter:
		return "one_center"
	case TwoPoints:
		return "two_points"
	case TwoPointsBackup:
		return "two_points_backup"
	case ThinPartType:
		return "thin_part"
	case ThinPartChange:
		return "thin_part_change"
	case ThinPartLoop:
		return "thin_part_loop"
	case ThickOutline:
		return "thick_outline"
	case ThickInner:
		return "thick_inner"
	default:
		return "unknown"
	}
}

// Variant is the movement-policy discriminant of a Point's payload.
type Variant int

const (
	Fixed Variant = iota
	Skeleton
	Outline
	Interior
)

// Point is the tagged-union SupportPoint of spec.md 3. Movement state
// lives directly in the struct rather than behind an interface, per
// spec.md 9's "dispatch via case analysis, not virtual calls".
type Point struct {
	Pos     geom.Point
	Kind    Type
	Variant Variant

	// Skeleton payload: the edge endpoints and the ratio-space
	// neighborhood the point may slide within.
	SkelA, SkelB    geom.Point
	SkelOriginRatio float64
	SkelMaxRatio    float64

	// Outline payload: the chain of boundary points the point slides
	// along, its starting arc length, and the max slide distance.
	OutlineChain     []geom.Point
	OutlineOriginLen float64
	OutlineMaxSlide  float64

	// Interior payload: the inset polygon the point must stay inside.
	InteriorPoly geom.Polygon
}

// Position returns the point's current location, satisfying
// package align's Movable interface.
func (p *Point) Position() geom.Point { return p.Pos }

// Move applies the point's movement-policy restriction while steering
// it toward target, returning the resulting displacement distance.
// Matches spec.md 4.8's per-variant dispatch.
func (p *Point) Move(target geom.Point) float64 {
	before := p.Pos
	switch p.Variant {
	case Fixed:
		// does nothing
	case Skeleton:
		p.movSkeleton(target)
	case Outline:
		p.moveOutline(target)
	case Interior:
		p.moveInterior(target)
	}
	return before.DistanceTo(p.Pos)
}

func (p *Point) movSkeleton(target geom.Point) {
	ratio := projectRatio(p.SkelA, p.SkelB, target)
	lo, hi := p.SkelOriginRatio-p.SkelMaxRatio, p.SkelOriginRatio+p.SkelMaxRatio
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	if ratio < lo {
		ratio = lo
	} else if ratio > hi {
		ratio = hi
	}
	p.Pos = geom.Line{A: p.SkelA, B: p.SkelB}.PointAt(ratio)
}

func projectRatio(a, b, target geom.Point) float64 {
	line := geom.Line{A: a, B: b}
	_, arcLen := geom.ClosestPointOnChain([]geom.Point{a, b}, target)
	length := line.Length()
	if length == 0 {
		return 0
	}
	return arcLen / length
}

func (p *Point) moveOutline(target geom.Point) {
	_, arcLen := geom.ClosestPointOnChain(p.OutlineChain, target)
	lo := p.OutlineOriginLen - p.OutlineMaxSlide
	hi := p.OutlineOriginLen + p.OutlineMaxSlide
	total := geom.ChainLength(p.OutlineChain)
	if lo < 0 {
		lo = 0
	}
	if hi > total {
		hi = total
	}
	if arcLen < lo {
		arcLen = lo
	} else if arcLen > hi {
		arcLen = hi
	}
	p.Pos = geom.PointAtArcLen(p.OutlineChain, arcLen)
}

func (p *Point) moveInterior(target geom.Point) {
	if p.InteriorPoly.ContainsPoint(target) {
		p.Pos = target
		return
	}
	closest, _ := geom.ClosestPointOnChain(closedChain(p.InteriorPoly), target)
	p.Pos = closest
}

func closedChain(poly geom.Polygon) []geom.Point {
	if len(poly) == 0 {
		return nil
	}
	return append(append([]geom.Point{}, poly...), poly[0])
}
