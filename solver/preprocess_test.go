package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubset(t *testing.T) {
	subsetTests := []struct {
		a, b     []int
		expected bool
	}{
		{[]int{1, 2}, []int{1, 2, 3}, true},
		{[]int{1, 2, 3}, []int{1, 2}, false},
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1}, []int{-1, 2}, false}, // same var, opposite polarity
		{[]int{-3}, []int{1, -3}, true},
		{[]int{}, []int{1, 2}, true}, // vacuously true
		{[]int{}, []int{}, true},
	}
	for _, test := range subsetTests {
		a := ParseSlice([][]int{test.a}).Clauses[0]
		b := ParseSlice([][]int{test.b}).Clauses[0]
		assert.Equal(t, test.expected, subset(a, b), "subset(%v, %v)", test.a, test.b)
	}
}

func TestRemoveSubsumed(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {1, 2, 3}})
	removed := pb.RemoveSubsumed()
	assert.Equal(t, 1, removed)
	require.Len(t, pb.Clauses, 1)
	assert.Equal(t, "1 2 0", pb.Clauses[0].CNF())
}

func TestRemoveSubsumedKeepsOrder(t *testing.T) {
	pb := ParseSlice([][]int{{4, 5}, {1, 2, 3}, {-4, 1}, {1, 2, 3, 4}})
	removed := pb.RemoveSubsumed()
	assert.Equal(t, 1, removed)
	require.Len(t, pb.Clauses, 3)
	assert.Equal(t, "4 5 0", pb.Clauses[0].CNF())
	assert.Equal(t, "1 2 3 0", pb.Clauses[1].CNF())
	assert.Equal(t, "-4 1 0", pb.Clauses[2].CNF())
}

func TestRemoveSubsumedDuplicates(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {1, 2}})
	removed := pb.RemoveSubsumed()
	assert.Equal(t, 1, removed)
	assert.Len(t, pb.Clauses, 1)
}

func TestRemoveSubsumedNothingToDo(t *testing.T) {
	pb := ParseSlice([][]int{{1, 2}, {-1, 3}, {2, -3}})
	assert.Equal(t, 0, pb.RemoveSubsumed())
	assert.Len(t, pb.Clauses, 3)
}

// Subsumption must never flip satisfiability.
func TestRemoveSubsumedPreservesStatus(t *testing.T) {
	cnfs := [][][]int{
		{{1, 2}, {1, 2, 3}, {-1}, {-2}},
		{{1}, {1, 2}, {-1, 2}, {-2}},
		{{1, 2}, {1, 2}, {-1, -2}, {1, -2}, {-1, 2}},
	}
	for _, cnf := range cnfs {
		pb := ParseSlice(cnf)
		expected := Unsat
		if bruteForceSat(cnf, pb.NbVars) {
			expected = Sat
		}
		s := New(pb, Options{})
		assert.Equal(t, expected, s.Solve(), "status changed by preprocessing for %v", cnf)
	}
}
