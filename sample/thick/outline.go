// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package thick

import (
	"github.com/resinforge/islandskel/geom"
)

// OutlineSample is one point sampled along a thick field's outline
// (spec.md 4.6): its position, and the inner chain it is permitted to
// slide along during alignment, with its arc-length offset on that
// chain.
type OutlineSample struct {
	Pos    geom.Point
	Chain  []geom.Point
	ArcLen float64
}

// SampleOutline walks f's border contour and each hole, finds maximal
// runs of outline (non-transition) segments, and samples the
// corresponding inner chain at arc-length spacing, per spec.md 4.6.
func SampleOutline(f Field, spacing float64) []OutlineSample {
	if spacing <= 0 {
		return nil
	}
	var out []OutlineSample
	offset := 0
	out = append(out, sampleRing(f.Border.Contour, f.Inner.Contour, f.IsOutline[offset:offset+len(f.Border.Contour)], spacing)...)
	offset += len(f.Border.Contour)
	for i, hole := range f.Border.Holes {
		inner := geom.Polygon{}
		if i < len(f.Inner.Holes) {
			inner = f.Inner.Holes[i]
		}
		out = append(out, sampleRing(hole, inner, f.IsOutline[offset:offset+len(hole)], spacing)...)
		offset += len(hole)
	}
	return out
}

func sampleRing(border, inner geom.Polygon, isOutline []bool, spacing float64) []OutlineSample {
	n := len(border)
	if n == 0 || len(inner) != n {
		return nil
	}
	allOutline := true
	for _, o := range isOutline {
		if !o {
			allOutline = false
			break
		}
	}
	var out []OutlineSample
	if allOutline {
		chain := append(append(geom.Polygon{}, inner...), inner[0])
		out = append(out, sampleChain([]geom.Point(chain), spacing, true)...)
		return out
	}

	start := -1
	for i := 0; i < n; i++ {
		if isOutline[i] && !isOutline[(i-1+n)%n] {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}
	i := start
	for count := 0; count < n; {
		if !isOutline[i] {
			i = (i + 1) % n
			count++
			continue
		}
		var chain []geom.Point
		chain = append(chain, inner[i])
		j := i
		for isOutline[j] {
			j = (j + 1) % n
			count++
			chain = append(chain, inner[j])
			if count > n {
				break
			}
		}
		out = append(out, sampleChain(chain, spacing, false)...)
		i = j
	}
	return out
}

// sampleChain places points every spacing units along chain, the
// first at half-spacing from the chain's start (spec.md 4.6).
func sampleChain(chain []geom.Point, spacing float64, cyclic bool) []OutlineSample {
	total := geom.ChainLength(chain)
	if total <= 0 {
		return nil
	}
	var out []OutlineSample
	for arc := spacing / 2; arc < total; arc += spacing {
		out = append(out, OutlineSample{
			Pos:    geom.PointAtArcLen(chain, arc),
			Chain:  chain,
			ArcLen: arc,
		})
	}
	return out
}
