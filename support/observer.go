// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package support

import (
	"github.com/resinforge/islandskel/segment"
	"github.com/resinforge/islandskel/skeleton"
)

// Observer receives immutable snapshots at well-defined sampling
// stages (spec.md 9's Design Notes: "an optional observer callback
// invoked at well-defined stages"). Any hook left nil is skipped.
type Observer struct {
	PostSkeleton    func(g *skeleton.Graph)
	PostSegmentation func(parts []*segment.Part)
	PostSampling    func(points []Point)
	PostAlignIter   func(iteration int, points []Point, maxMove float64)
}

func (o Observer) skeleton(g *skeleton.Graph) {
	if o.PostSkeleton != nil {
		o.PostSkeleton(g)
	}
}

func (o Observer) segmentation(parts []*segment.Part) {
	if o.PostSegmentation != nil {
		o.PostSegmentation(parts)
	}
}

func (o Observer) sampling(points []Point) {
	if o.PostSampling != nil {
		o.PostSampling(append([]Point(nil), points...))
	}
}

func (o Observer) alignIter(i int, points []Point, maxMove float64) {
	if o.PostAlignIter != nil {
		o.PostAlignIter(i, points, maxMove)
	}
}
