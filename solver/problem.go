package solver

import "fmt"

// A Problem is a list of clauses & a nb of vars.
// It is exclusively owned by the solver for the lifetime of a solve.
type Problem struct {
	NbVars  int       // Total nb of vars
	Clauses []*Clause // All clauses, in file order. A clause's index is its identity.
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses))
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}
