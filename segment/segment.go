// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package segment partitions a skeleton.Graph into thin, middle and
// thick IslandParts with hysteresis (spec.md 4.3), then merges middle
// parts away so only alternating thin/thick parts remain.
package segment

import (
	"errors"
	"sort"

	"github.com/resinforge/islandskel/skeleton"
)

// ErrSegmentation is the sentinel for spec.md 7's SegmentationError:
// Segment returns it when the skeleton graph has no nodes or no
// contour node. Whether the graph is connected is not checked.
var ErrSegmentation = errors.New("segment: inconsistent skeleton graph")

// Type classifies an IslandPart.
type Type int

const (
	Thin Type = iota
	Thick
	Middle
)

// Change is a transition between two adjacent parts, recorded on the
// part it belongs to: Position is where the boundary sits (on this
// part's side), NeighborPart is the index of the part on the other
// side.
type Change struct {
	Position     skeleton.Position
	NeighborPart int
}

// Part is one maximal subgraph of the skeleton sharing a hysteresis
// classification.
type Part struct {
	Type       Type
	Edges      []int // undirected edge ids: min(neighbor index, its twin)
	Changes    []Change
	SumLengths float64
}

// Config carries the subset of support.SampleConfig the segmenter
// needs, decoupled so this package does not import support (which
// depends on segment for dispatch).
type Config struct {
	ThinMaxWidth  float64
	ThickMinWidth float64
	MinPartLength float64
}

// Segment classifies and merges g's edges into Parts per spec.md 4.3.
// It fails with ErrSegmentation if g has no nodes or no contour node
// (spec.md 4.2).
func Segment(g *skeleton.Graph, cfg Config) ([]*Part, error) {
	if len(g.Nodes) == 0 {
		return nil, ErrSegmentation
	}
	contours := g.ContourNodes()
	if len(contours) == 0 {
		return nil, ErrSegmentation
	}

	edgeType := classifyEdges(g, cfg)
	uf := newUnionFind(len(g.Neighbors))
	for node := range g.Nodes {
		for _, ni := range g.Nodes[node].Neighbors {
			eid := edgeID(g, ni)
			for _, nj := range g.Nodes[node].Neighbors {
				ejd := edgeID(g, nj)
				if eid == ejd {
					continue
				}
				if edgeType[eid] == edgeType[ejd] {
					uf.union(eid, ejd)
				}
			}
		}
	}

	parts, partOf := buildParts(g, edgeType, uf)
	computeChanges(g, parts, partOf)

	parts = mergeMiddleIntoBiggestNeighbor(parts)
	parts = mergeSameTypeNeighbors(parts)
	parts = mergeShortParts(parts, cfg.MinPartLength)

	return parts, nil
}

func classifyEdges(g *skeleton.Graph, cfg Config) map[int]Type {
	out := make(map[int]Type)
	for ni := range g.Neighbors {
		eid := edgeID(g, ni)
		if _, ok := out[eid]; ok {
			continue
		}
		w := g.Neighbors[ni].MaxWidth()
		switch {
		case w < cfg.ThickMinWidth:
			out[eid] = Thin
		case w > cfg.ThinMaxWidth:
			out[eid] = Thick
		default:
			out[eid] = Middle
		}
	}
	return out
}

// edgeID returns the canonical undirected id of a directed neighbor.
func edgeID(g *skeleton.Graph, ni int) int {
	twin := g.Neighbors[ni].Twin
	if twin < ni {
		return twin
	}
	return ni
}

func buildParts(g *skeleton.Graph, edgeType map[int]Type, uf *unionFind) ([]*Part, map[int]int) {
	rootToIdx := map[int]int{}
	var parts []*Part
	partOf := map[int]int{} // edge id -> part index

	edgeIDs := make([]int, 0, len(edgeType))
	for eid := range edgeType {
		edgeIDs = append(edgeIDs, eid)
	}
	sort.Ints(edgeIDs)

	for _, eid := range edgeIDs {
		root := uf.find(eid)
		idx, ok := rootToIdx[root]
		if !ok {
			idx = len(parts)
			rootToIdx[root] = idx
			parts = append(parts, &Part{Type: edgeType[eid]})
		}
		parts[idx].Edges = append(parts[idx].Edges, eid)
		parts[idx].SumLengths += g.Neighbors[eid].Length
		partOf[eid] = idx
	}
	return parts, partOf
}

func computeChanges(g *skeleton.Graph, parts []*Part, partOf map[int]int) {
	seen := map[[2]int]bool{}
	for node := range g.Nodes {
		neighbors := g.Nodes[node].Neighbors
		for i, ni := range neighbors {
			pi := partOf[edgeID(g, ni)]
			for j, nj := range neighbors {
				if i == j {
					continue
				}
				pj := partOf[edgeID(g, nj)]
				if pi == pj {
					continue
				}
				key := [2]int{node, minmax(pi, pj)}
				if seen[key] {
					continue
				}
				seen[key] = true
				parts[pi].Changes = append(parts[pi].Changes, Change{
					Position:     positionAt(g, node, ni),
					NeighborPart: pj,
				})
				parts[pj].Changes = append(parts[pj].Changes, Change{
					Position:     positionAt(g, node, nj),
					NeighborPart: pi,
				})
			}
		}
	}
}

func minmax(a, b int) int {
	if a < b {
		return a*100000 + b
	}
	return b*100000 + a
}

// positionAt returns the Position of node expressed via a neighbor
// edge that departs from it (ratio 0), preferring ni if it already
// does, else its twin.
func positionAt(g *skeleton.Graph, node, ni int) skeleton.Position {
	if g.Neighbors[ni].From == node {
		return skeleton.Position{Neighbor: ni, Ratio: 0}
	}
	return skeleton.Position{Neighbor: g.Neighbors[ni].Twin, Ratio: 0}
}

// mergeMiddleIntoBiggestNeighbor repeatedly merges a middle part into
// its neighbor with the greatest SumLengths (ties: lower index wins),
// per spec.md 4.3 post-processing step 1.
func mergeMiddleIntoBiggestNeighbor(parts []*Part) []*Part {
	live := newLiveSet(parts)
	for {
		mi := live.firstOfType(Middle)
		if mi < 0 {
			break
		}
		part := live.get(mi)
		if len(part.Changes) == 0 {
			live.remove(mi)
			continue
		}
		best := -1
		for _, ch := range part.Changes {
			n := live.resolve(ch.NeighborPart)
			if n == mi {
				continue
			}
			np := live.get(n)
			if best < 0 {
				best = n
				continue
			}
			bp := live.get(best)
			if np.SumLengths > bp.SumLengths || (np.SumLengths == bp.SumLengths && n < best) {
				best = n
			}
		}
		if best < 0 {
			live.remove(mi)
			continue
		}
		live.merge(best, mi, live.get(best).Type)
	}
	return live.compact()
}

// mergeSameTypeNeighbors repeatedly merges adjacent parts of the same
// type (thin-thin or thick-thick), per step 2.
func mergeSameTypeNeighbors(parts []*Part) []*Part {
	live := newLiveSet(parts)
	for {
		found := false
		for idx, part := range live.all() {
			for _, ch := range part.Changes {
				n := live.resolve(ch.NeighborPart)
				if n == idx {
					continue
				}
				if live.get(n).Type == part.Type {
					lo, hi := idx, n
					if hi < lo {
						lo, hi = hi, lo
					}
					live.merge(lo, hi, part.Type)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			break
		}
	}
	return live.compact()
}

// mergeShortParts repeatedly collapses the part with the smallest
// longest-internal-distance (approximated here by SumLengths, a
// simplification of the exact multi-source-Dijkstra measure of
// spec.md 4.3 - see DESIGN.md) below minPartLength into all of its
// neighbors at once, per step 3.
func mergeShortParts(parts []*Part, minPartLength float64) []*Part {
	live := newLiveSet(parts)
	for live.count() > 1 {
		worst, worstDist := -1, minPartLength
		for idx, part := range live.all() {
			d := part.SumLengths
			if d < worstDist {
				worstDist, worst = d, idx
			}
		}
		if worst < 0 {
			break
		}
		part := live.get(worst)
		oppositeType := Thick
		if part.Type == Thick {
			oppositeType = Thin
		}
		neighbors := map[int]bool{}
		for _, ch := range part.Changes {
			n := live.resolve(ch.NeighborPart)
			if n != worst {
				neighbors[n] = true
			}
		}
		if len(neighbors) == 0 {
			live.remove(worst)
			continue
		}
		target := -1
		for n := range neighbors {
			if target < 0 || n < target {
				target = n
			}
		}
		live.merge(target, worst, oppositeType)
		for n := range neighbors {
			if n != worst {
				rn := live.resolve(n)
				if rn != target {
					live.merge(target, rn, oppositeType)
				}
			}
		}
	}
	return live.compact()
}
