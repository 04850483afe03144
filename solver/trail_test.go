package solver

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// A stateSnapshot captures everything undoTo must restore: the assignment
// table, each clause's satisfied flag and the watch membership per literal.
// Watch lists are compared as sets, since a removal followed by its undo
// re-adds at the end of the list.
type stateSnapshot struct {
	Model   []int8
	SatFlag []bool
	Watches [][]int32
}

func (s *Solver) snapshot() stateSnapshot {
	snap := stateSnapshot{
		Model:   make([]int8, len(s.model)),
		SatFlag: make([]bool, len(s.clauses)),
		Watches: make([][]int32, len(s.wl.wlist)),
	}
	copy(snap.Model, s.model)
	for i, c := range s.clauses {
		snap.SatFlag[i] = c.satisfied
	}
	for i, lst := range s.wl.wlist {
		ids := make([]int32, len(lst))
		copy(ids, lst)
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		snap.Watches[i] = ids
	}
	return snap
}

func TestUndoToRestoresExactState(t *testing.T) {
	s := New(ParseSlice([][]int{
		{1, 2, 3}, {-1, 2}, {-2, 3}, {-3, 4}, {1, -4},
	}), Options{})
	before := s.snapshot()
	cp := s.mark()

	// Branch on variable 1, then run a full node's worth of mutations.
	s.model[0] = bindTrue
	s.logAssign(0)
	s.markSatisfiedClauses()
	require.True(t, s.propagate())
	s.eliminatePure()

	require.NotEqual(t, before, s.snapshot(), "the decision should have mutated state")
	s.undoTo(cp)
	if diff := cmp.Diff(before, s.snapshot()); diff != "" {
		t.Errorf("state not restored (-before +after):\n%s", diff)
	}
}

func TestUndoToNestedCheckpoints(t *testing.T) {
	s := New(ParseSlice([][]int{{1, 2}, {-1, 2, 3}, {-2, -3}}), Options{})
	snap0 := s.snapshot()
	cp0 := s.mark()

	s.model[0] = bindTrue
	s.logAssign(0)
	s.markSatisfiedClauses()
	snap1 := s.snapshot()
	cp1 := s.mark()

	s.model[1] = bindFalse
	s.logAssign(1)
	s.markSatisfiedClauses()
	require.True(t, s.propagate())

	s.undoTo(cp1)
	if diff := cmp.Diff(snap1, s.snapshot()); diff != "" {
		t.Errorf("inner checkpoint not restored (-want +got):\n%s", diff)
	}
	s.undoTo(cp0)
	if diff := cmp.Diff(snap0, s.snapshot()); diff != "" {
		t.Errorf("outer checkpoint not restored (-want +got):\n%s", diff)
	}
}

func TestUndoEntryKinds(t *testing.T) {
	s := New(ParseSlice([][]int{{1, 2}}), Options{})
	before := s.snapshot()
	cp := s.mark()

	// Exercise each entry kind by hand.
	s.model[0] = bindTrue
	s.logAssign(0)
	s.satisfyClause(0)
	s.watchRemove(IntToLit(1), 0)
	s.watchAdd(IntToLit(-1), 0)

	s.undoTo(cp)
	if diff := cmp.Diff(before, s.snapshot()); diff != "" {
		t.Errorf("state not restored (-want +got):\n%s", diff)
	}
}

func TestUndoToEmptyCheckpointIsNoop(t *testing.T) {
	s := New(ParseSlice([][]int{{1, 2}}), Options{})
	before := s.snapshot()
	s.undoTo(s.mark())
	if diff := cmp.Diff(before, s.snapshot()); diff != "" {
		t.Errorf("noop undo changed state (-want +got):\n%s", diff)
	}
}
