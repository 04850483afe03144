package solver

// eliminatePure assigns every pure variable, i.e every unassigned variable
// occurring with a single polarity among the not-yet-satisfied clauses, to
// the value satisfying that polarity, then flags the clauses made true by
// those assignments. A variable with no remaining occurrence is left free.
// Pure assignments can never conflict.
func (s *Solver) eliminatePure() {
	positive := make([]bool, s.nbVars)
	negative := make([]bool, s.nbVars)
	for _, c := range s.clauses {
		if c.satisfied {
			continue
		}
		for _, lit := range c.lits {
			if s.model[lit.Var()] != unassigned {
				continue
			}
			if lit.IsPositive() {
				positive[lit.Var()] = true
			} else {
				negative[lit.Var()] = true
			}
		}
	}
	pure := make([]bool, s.nbVars)
	for v := 0; v < s.nbVars; v++ {
		if s.model[v] != unassigned {
			continue
		}
		if positive[v] != negative[v] {
			pure[v] = true
			if positive[v] {
				s.model[v] = bindTrue
			} else {
				s.model[v] = bindFalse
			}
			s.logAssign(Var(v))
			s.Stats.NbPureLits++
		}
	}
	for idx, c := range s.clauses {
		if c.satisfied {
			continue
		}
		for _, lit := range c.lits {
			if pure[lit.Var()] && s.litStatus(lit) == Sat {
				s.satisfyClause(int32(idx))
				break
			}
		}
	}
}
