package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeVarOrder(t *testing.T) {
	// Occurrences: var 3 appears in three clauses, var 1 in two, var 2 in one.
	s := New(ParseSlice([][]int{{1, 3}, {-3, 2}, {-1, -3}}), Options{})
	assert.Equal(t, []Var{2, 0, 1}, s.varOrder)
}

func TestComputeVarOrderTiesKeepNaturalOrder(t *testing.T) {
	s := New(ParseSlice([][]int{{1, 2}, {-1, -2}, {3}}), Options{})
	assert.Equal(t, []Var{0, 1, 2}, s.varOrder)
}

func TestChooseVar(t *testing.T) {
	s := New(ParseSlice([][]int{{1, 3}, {-3, 2}, {-1, -3}}), Options{})
	assert.Equal(t, Var(2), s.chooseVar(), "most frequent unassigned var should be picked")
	s.model[2] = bindTrue
	assert.Equal(t, Var(0), s.chooseVar())
	s.model[0] = bindFalse
	assert.Equal(t, Var(1), s.chooseVar())
	s.model[1] = bindTrue
	assert.Equal(t, Var(-1), s.chooseVar(), "exhausted ranking should report no var")
}
