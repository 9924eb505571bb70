// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package segment

import "sort"

// liveSet manages iterative part merges where a merged-away part's
// index must keep resolving to its replacement (spec.md 9's "iterative
// merges that invalidate indices" concern), via a redirect table rather
// than dangling references.
type liveSet struct {
	parts    []*Part
	redirect []int // -1: canonical; else index it was merged into
	removed  []bool
}

func newLiveSet(parts []*Part) *liveSet {
	ls := &liveSet{parts: parts, redirect: make([]int, len(parts)), removed: make([]bool, len(parts))}
	for i := range ls.redirect {
		ls.redirect[i] = -1
	}
	return ls
}

func (ls *liveSet) resolve(i int) int {
	for ls.redirect[i] != -1 {
		i = ls.redirect[i]
	}
	return i
}

func (ls *liveSet) get(i int) *Part {
	return ls.parts[ls.resolve(i)]
}

func (ls *liveSet) firstOfType(t Type) int {
	for i := range ls.parts {
		if ls.redirect[i] == -1 && !ls.removed[i] && ls.parts[i].Type == t {
			return i
		}
	}
	return -1
}

// all returns the canonical, live parts keyed by index; ranging over
// the map visits them in unspecified order.
func (ls *liveSet) all() map[int]*Part {
	out := map[int]*Part{}
	for i := range ls.parts {
		if ls.redirect[i] == -1 && !ls.removed[i] {
			out[i] = ls.parts[i]
		}
	}
	return out
}

func (ls *liveSet) count() int {
	n := 0
	for i := range ls.parts {
		if ls.redirect[i] == -1 && !ls.removed[i] {
			n++
		}
	}
	return n
}

func (ls *liveSet) remove(i int) {
	r := ls.resolve(i)
	ls.removed[r] = true
	for _, part := range ls.all() {
		var kept []Change
		for _, ch := range part.Changes {
			if ls.resolve(ch.NeighborPart) != r {
				kept = append(kept, ch)
			}
		}
		part.Changes = kept
	}
}

// merge folds remove's edges and changes into keep, retypes keep to
// newType, and redirects remove (and anything already redirected to
// it) to keep.
func (ls *liveSet) merge(keep, remove int, newType Type) {
	rk, rr := ls.resolve(keep), ls.resolve(remove)
	if rk == rr {
		return
	}
	kp, rp := ls.parts[rk], ls.parts[rr]
	kp.Edges = append(kp.Edges, rp.Edges...)
	kp.SumLengths += rp.SumLengths
	kp.Type = newType

	for _, ch := range rp.Changes {
		n := ls.resolve(ch.NeighborPart)
		if n == rk {
			continue // now internal to the merged part
		}
		kp.Changes = append(kp.Changes, Change{Position: ch.Position, NeighborPart: n})
	}
	var filtered []Change
	for _, ch := range kp.Changes {
		if r := ls.resolve(ch.NeighborPart); r == rk || r == rr {
			continue
		}
		filtered = append(filtered, ch)
	}
	kp.Changes = filtered

	ls.redirect[rr] = rk
	ls.removed[rr] = true
	for i, r := range ls.redirect {
		if r == rr {
			ls.redirect[i] = rk
		}
	}
}

// compact emits the final, densely-indexed Part slice with every
// Change.NeighborPart remapped to the new indices.
func (ls *liveSet) compact() []*Part {
	var order []int
	for i := range ls.parts {
		if ls.redirect[i] == -1 && !ls.removed[i] {
			order = append(order, i)
		}
	}
	sort.Ints(order)
	oldToNew := make(map[int]int, len(order))
	for newIdx, old := range order {
		oldToNew[old] = newIdx
	}
	out := make([]*Part, len(order))
	for newIdx, old := range order {
		p := ls.parts[old]
		remapped := make([]Change, 0, len(p.Changes))
		for _, ch := range p.Changes {
			n, ok := oldToNew[ls.resolve(ch.NeighborPart)]
			if !ok {
				continue
			}
			remapped = append(remapped, Change{Position: ch.Position, NeighborPart: n})
		}
		p.Changes = remapped
		out[newIdx] = p
	}
	return out
}
