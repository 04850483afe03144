package solver

import "sort"

// Static variable ordering: variables are ranked once, before search, by how
// often they occur in the clause set. The ranking never adapts to the state
// of the search; that is a deliberate simplicity tradeoff.

// computeVarOrder builds the fixed ranking, most frequent variable first.
// Ties keep the natural variable order.
func (s *Solver) computeVarOrder() {
	counts := make([]int, s.nbVars)
	for _, c := range s.clauses {
		for _, lit := range c.lits {
			counts[lit.Var()]++
		}
	}
	order := make([]Var, s.nbVars)
	for i := range order {
		order[i] = Var(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	s.varOrder = order
}

// chooseVar returns the first unassigned variable in the static ranking,
// or -1 if every variable is bound.
func (s *Solver) chooseVar() Var {
	for _, v := range s.varOrder {
		if s.model[v] == unassigned {
			return v
		}
	}
	return -1
}
