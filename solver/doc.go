/*
Package solver decides satisfiability of CNF formulas with a DPLL search
built on two-watched-literal unit propagation.

Its input is either a DIMACS CNF stream (io.Reader) or a solver.Problem
object containing the set of clauses to be solved.

Describing a problem

1. parse a DIMACS stream. If the io.Reader produces the following content:

    p cnf 3 3
    1 2 3 0
    -1 2 0
    -2 3 0

the programmer can create the Problem by doing:

    pb, err := solver.ParseCNF(f)

2. create the equivalent list of lists of literals:

    pb := solver.ParseSlice([][]int{
        {1, 2, 3},
        {-1, 2},
        {-2, 3},
    })

Solving a problem

Create a solver and call Solve:

    s := solver.New(pb, solver.Options{Timeout: time.Minute})
    status := s.Solve()

Solve returns Sat, Unsat or Timeout. Creating the solver runs subsumption
preprocessing on the problem, so len(pb.Clauses) can shrink. On Sat, a
satisfying binding for every variable is available:

    model := s.Model() // model[i] is the binding of CNF variable i+1

On Timeout, the search was abandoned mid-branch and the solver's internal
state is partial: neither the model nor the clause flags can be trusted, and
the session must not be reused.

The search is purely sequential and recurses once per decision, so the
native stack must accommodate one frame per variable in the worst case.
*/
package solver
