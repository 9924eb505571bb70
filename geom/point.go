// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the fixed-point 2D primitives the sampler works
// in: points, lines and polygons with coordinates expressed as integer
// nanometers, plus thin bridges to float64 vector math for the geometry
// kernels (Voronoi construction, offsetting) that need it.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D coordinate in nanometers (1 mm = 1e6 units).
type Point struct {
	X, Y int64
}

// Pt is a convenience constructor.
func Pt(x, y int64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Neg() Point        { return Point{-p.X, -p.Y} }

// Mid returns the midpoint of p and q, rounding toward zero on ties;
// halving each coordinate first avoids the overflow of (p+q)/2 seen in
// naive implementations.
func (p Point) Mid(q Point) Point {
	return Point{p.X/2 + q.X/2 + (p.X%2+q.X%2)/2, p.Y/2 + q.Y/2 + (p.Y%2+q.Y%2)/2}
}

// R2 converts p to a float64 vector for use with geometry kernels.
func (p Point) R2() r2.Point { return r2.Point{X: float64(p.X), Y: float64(p.Y)} }

// FromR2 rounds a float64 vector back to nanometer precision.
func FromR2(v r2.Point) Point {
	return Point{X: int64(math.Round(v.X)), Y: int64(math.Round(v.Y))}
}

// DistanceTo returns the Euclidean distance between p and q as float64.
func (p Point) DistanceTo(q Point) float64 {
	return p.R2().Sub(q.R2()).Norm()
}

// Line is a directed line segment from A to B.
type Line struct {
	A, B Point
}

// Vector returns B-A as a float64 vector.
func (l Line) Vector() r2.Point { return l.B.R2().Sub(l.A.R2()) }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 { return l.Vector().Norm() }

// PointAt returns the point at parameter t in [0,1] along the segment,
// rounded to nanometer precision.
func (l Line) PointAt(t float64) Point {
	return FromR2(l.A.R2().Add(l.Vector().Mul(t)))
}

// DistanceToPoint returns the perpendicular (or nearest-endpoint)
// distance from p to the segment.
func (l Line) DistanceToPoint(p Point) float64 {
	a, b, q := l.A.R2(), l.B.R2(), p.R2()
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 == 0 {
		return q.Sub(a).Norm()
	}
	t := q.Sub(a).Dot(ab) / length2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Mul(t))
	return q.Sub(proj).Norm()
}

// Reversed returns the line traversed from B to A.
func (l Line) Reversed() Line { return Line{A: l.B, B: l.A} }

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a box suitable as the zero value for repeated Extend calls.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.MaxInt64, Y: math.MaxInt64},
		Max: Point{X: math.MinInt64, Y: math.MinInt64},
	}
}

// Extend grows the box to include p.
func (b Box) Extend(p Point) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Center returns the box centroid.
func (b Box) Center() Point { return b.Min.Mid(b.Max) }

// Size returns the (width, height) of the box as a point.
func (b Box) Size() Point { return b.Max.Sub(b.Min) }

// FitsInRadius reports whether the box's half-diagonal is within radius
// of its center, i.e. a disk of that radius centered on the box covers it.
func (b Box) FitsInRadius(radius int64) bool {
	c := b.Center()
	dx := b.Max.X - c.X
	dy := b.Max.Y - c.Y
	return dx*dx+dy*dy <= radius*radius
}
