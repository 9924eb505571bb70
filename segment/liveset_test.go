// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package segment

import "testing"

func newTestParts() []*Part {
	return []*Part{
		{Type: Thin, SumLengths: 1, Changes: []Change{{NeighborPart: 1}}},
		{Type: Thick, SumLengths: 2, Changes: []Change{{NeighborPart: 0}, {NeighborPart: 2}}},
		{Type: Thin, SumLengths: 1, Changes: []Change{{NeighborPart: 1}}},
	}
}

func TestLiveSetResolveBeforeMerge(t *testing.T) {
	ls := newLiveSet(newTestParts())
	for i := 0; i < 3; i++ {
		if ls.resolve(i) != i {
			t.Errorf("resolve(%d) = %d before any merge, want %d", i, ls.resolve(i), i)
		}
	}
}

func TestLiveSetMergeRedirects(t *testing.T) {
	ls := newLiveSet(newTestParts())
	ls.merge(1, 0, Thick)
	if ls.resolve(0) != 1 {
		t.Errorf("resolve(0) after merge into 1 = %d, want 1", ls.resolve(0))
	}
	if ls.count() != 2 {
		t.Errorf("count() = %d, want 2", ls.count())
	}
	kept := ls.get(0)
	if kept.Type != Thick {
		t.Errorf("merged part type = %v, want Thick", kept.Type)
	}
	if kept.SumLengths != 3 {
		t.Errorf("merged part SumLengths = %v, want 3", kept.SumLengths)
	}
}

func TestLiveSetMergeDropsInternalChange(t *testing.T) {
	ls := newLiveSet(newTestParts())
	ls.merge(1, 0, Thick)
	for _, ch := range ls.get(1).Changes {
		if ls.resolve(ch.NeighborPart) == 1 {
			t.Error("merged part still references itself as a neighbor")
		}
	}
}

func TestLiveSetCompactRemapsIndices(t *testing.T) {
	ls := newLiveSet(newTestParts())
	ls.merge(1, 0, Thick)
	out := ls.compact()
	if len(out) != 2 {
		t.Fatalf("compact() returned %d parts, want 2", len(out))
	}
	for _, p := range out {
		for _, ch := range p.Changes {
			if ch.NeighborPart < 0 || ch.NeighborPart >= len(out) {
				t.Errorf("Change.NeighborPart = %d out of range [0,%d)", ch.NeighborPart, len(out))
			}
		}
	}
}

func TestLiveSetFirstOfType(t *testing.T) {
	ls := newLiveSet(newTestParts())
	if i := ls.firstOfType(Thick); i != 1 {
		t.Errorf("firstOfType(Thick) = %d, want 1", i)
	}
	ls.remove(1)
	if i := ls.firstOfType(Thick); i != -1 {
		t.Errorf("firstOfType(Thick) after remove = %d, want -1", i)
	}
}
