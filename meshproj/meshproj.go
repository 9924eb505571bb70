// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package meshproj lifts 2D support points onto a 3D surface. The
// sampler itself works entirely in the 2D projection of an island
// (spec.md §1's Non-goal: "no 3D mesh analysis"); meshproj is the thin
// seam where a caller who does have a mesh, heightfield, or BVH can
// snap the sampler's output onto it, without this module ever
// touching triangle or mesh data directly.
package meshproj

import (
	"github.com/resinforge/islandskel/support"
)

// RayCaster answers "what height does the surface have above (x, y)",
// e.g. by firing a vertical ray into a mesh's BVH. Implemented outside
// this module; meshproj only calls through the interface.
type RayCaster interface {
	HeightAt(x, y float64) (z float64, hit bool)
}

// Point3 is a support point lifted to 3D via a RayCaster.
type Point3 struct {
	X, Y, Z float64
	Kind    support.Type
}

// Project snaps each of points onto rc's surface. A point whose ray
// misses the surface (e.g. one that landed just outside the original
// mesh silhouette after Douglas-Peucker simplification) is dropped
// rather than emitted with an undefined height.
func Project(points []support.Point, rc RayCaster) []Point3 {
	out := make([]Point3, 0, len(points))
	for _, p := range points {
		z, ok := rc.HeightAt(float64(p.Pos.X), float64(p.Pos.Y))
		if !ok {
			continue
		}
		out = append(out, Point3{X: float64(p.Pos.X), Y: float64(p.Pos.Y), Z: z, Kind: p.Kind})
	}
	return out
}
