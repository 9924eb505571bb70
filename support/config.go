// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package support

// SampleConfig carries every tunable named in spec.md 6's option
// table, plus the ambient flags spec.md 7 layers on top (permissive
// degrading on VoronoiConstructionError, and Debug). All distances are
// nanometers.
type SampleConfig struct {
	HeadRadius float64

	SimplificationTolerance float64

	ThinMaxWidth  float64
	ThickMinWidth float64

	ThinMaxDistance float64

	ThickOutlineMaxDistance float64
	ThickInnerMaxDistance   float64

	MinimalDistanceFromOutline float64
	MaximalDistanceFromOutline float64

	MaxAlignDistance float64

	MinPartLength float64

	CountIteration int
	MinimalMove    float64

	MaxLengthForOneSupportPoint       float64
	MaxLengthForTwoSupportPoints      float64
	MaxLengthRatioForTwoSupportPoints float64

	// PermissiveOnVoronoiError degrades ErrVoronoiConstruction to an
	// empty point set instead of surfacing it, per spec.md 7.
	PermissiveOnVoronoiError bool

	// Debug is not read by any code path: no invariant assertions run,
	// and Observer hooks fire whenever they are set, whatever its value.
	Debug bool

	// Observer, if set, is invoked by SampleIsland with snapshots at
	// well-defined stages: after skeleton construction, after
	// segmentation, after per-part sampling, and once after alignment
	// finishes (with the number of iterations run). SamplePeninsula
	// invokes none of its hooks. Peripheral to the computation itself
	// (spec.md 9).
	Observer Observer
}

// Default returns a SampleConfig with the dimensions spec.md 8's
// end-to-end scenarios exercise, scaled from millimeters to the
// nanometer unit (1mm = 1e6).
func Default() SampleConfig {
	const mm = 1e6
	return SampleConfig{
		HeadRadius:                        0.4 * mm,
		SimplificationTolerance:           0.05 * mm,
		ThinMaxWidth:                      2 * mm,
		ThickMinWidth:                     1 * mm,
		ThinMaxDistance:                   3 * mm,
		ThickOutlineMaxDistance:           3 * mm,
		ThickInnerMaxDistance:             3 * mm,
		MinimalDistanceFromOutline:        0.3 * mm,
		MaximalDistanceFromOutline:        4 * mm,
		MaxAlignDistance:                  0.5 * mm,
		MinPartLength:                     0.5 * mm,
		CountIteration:                    10,
		MinimalMove:                       0.01 * mm,
		MaxLengthForOneSupportPoint:       3 * mm,
		MaxLengthForTwoSupportPoints:      10 * mm,
		MaxLengthRatioForTwoSupportPoints: 0.4,
	}
}
