package solver

// Subsumption preprocessing: a clause whose literal set contains another
// clause's literal set is logically dominated by it and can be dropped
// without changing satisfiability.

// subset returns true iff every literal of a also appears in b.
// An empty clause is a subset of anything.
func subset(a, b *Clause) bool {
	keys := b.litKeys()
	for _, lit := range a.lits {
		if _, ok := keys[lit.Int()]; !ok {
			return false
		}
	}
	return true
}

// RemoveSubsumed removes every clause subsumed by a smaller-or-equal distinct
// clause, compacts the clause list preserving the relative order of the
// survivors, and returns the number of clauses removed. Clause indices are
// only stable after this pass, so it must run before any watch index or
// search state is built.
func (pb *Problem) RemoveSubsumed() int {
	marked := make([]bool, len(pb.Clauses))
	for i, ci := range pb.Clauses {
		if marked[i] {
			continue
		}
		for j, cj := range pb.Clauses {
			if i == j || marked[j] {
				continue
			}
			if ci.Len() >= cj.Len() && subset(cj, ci) {
				marked[i] = true
				break
			}
		}
	}
	nb := 0
	for i, c := range pb.Clauses {
		if !marked[i] {
			pb.Clauses[nb] = c
			nb++
		}
	}
	removed := len(pb.Clauses) - nb
	pb.Clauses = pb.Clauses[:nb]
	return removed
}
