package solver

import (
	"fmt"
	"time"
)

// DefaultTimeout is the time budget used when Options.Timeout is left zero.
const DefaultTimeout = time.Hour

// Options configure a solving session.
type Options struct {
	Timeout time.Duration // Time budget for the whole search. DefaultTimeout if zero.
}

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions    int // How many branching decisions were made
	NbPropagations int // How many literals were assigned by unit propagation
	NbConflicts    int // How many conflicts were met during propagation
	NbPureLits     int // How many pure literals were fixed
	NbSubsumed     int // How many clauses were removed by subsumption
	MaxDepth       int // Deepest decision level reached
}

const (
	unassigned int8 = -1
	bindFalse  int8 = 0
	bindTrue   int8 = 1
)

// A Model is a binding for several variables.
// It can be totally bound (i.e all vars have a true or false binding)
// or only partially. Each var, in order, is associated with a binding:
// -1 means the variable is free, 0 bound to false, 1 bound to true.
type Model []int8

func (m Model) String() string {
	bound := make(map[int]bool)
	for i := range m {
		if m[i] != unassigned {
			bound[i+1] = m[i] == bindTrue
		}
	}
	return fmt.Sprintf("%v", bound)
}

// A Solver holds the whole state of one solving session: the clause set, the
// assignment table, the watch index, the trail and the static variable
// ordering. It is the main data structure. A Solver is not safe for
// concurrent use; each formula instance gets its own session.
type Solver struct {
	Stats    Stats // Statistics about the solving process.
	nbVars   int
	clauses  []*Clause
	status   Status
	model    Model
	wl       watcherList
	trail    []undoEntry
	varOrder []Var
	timeout  time.Duration
	start    time.Time
}

// New makes a solver for the given problem. It runs the subsumption
// preprocessing pass on pb, then builds the watch index and the variable
// ordering; pb is owned by the returned solver from this point on and clause
// indices never change afterwards.
func New(pb *Problem, opts Options) *Solver {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	s := &Solver{
		nbVars:  pb.NbVars,
		status:  Indet,
		timeout: opts.Timeout,
	}
	s.Stats.NbSubsumed = pb.RemoveSubsumed()
	s.clauses = pb.Clauses
	s.model = make(Model, s.nbVars)
	for i := range s.model {
		s.model[i] = unassigned
	}
	s.initWatcherList()
	s.computeVarOrder()
	return s
}

// litStatus returns whether the literal is made true (Sat) or false (Unsat)
// by the current bindings, or if it is unbounded (Indet).
func (s *Solver) litStatus(l Lit) Status {
	assign := s.model[l.Var()]
	if assign == unassigned {
		return Indet
	}
	if (assign == bindTrue) == l.IsPositive() {
		return Sat
	}
	return Unsat
}

// clauseTrue returns true iff some literal of c evaluates true.
func (s *Solver) clauseTrue(c *Clause) bool {
	for _, lit := range c.lits {
		if s.litStatus(lit) == Sat {
			return true
		}
	}
	return false
}

// markSatisfiedClauses flags (and logs) every not-yet-satisfied clause that
// is true under the current bindings. Called after a branching assignment.
func (s *Solver) markSatisfiedClauses() {
	for idx, c := range s.clauses {
		if !c.satisfied && s.clauseTrue(c) {
			s.satisfyClause(int32(idx))
		}
	}
}

// Solve solves the problem associated with the solver and returns Sat, Unsat
// or Timeout. After Sat, Model returns a satisfying binding. After Timeout
// the solver state is partial and must not be reused.
func (s *Solver) Solve() Status {
	s.start = time.Now()
	s.status = s.dpll(0)
	return s.status
}

// dpll is one node of the recursive search: propagate, eliminate pure
// literals, test for satisfaction, otherwise branch on a variable, trying
// false then true, rolling back through the trail between branches.
func (s *Solver) dpll(depth int) Status {
	if time.Since(s.start) >= s.timeout {
		return Timeout
	}
	if depth > s.Stats.MaxDepth {
		s.Stats.MaxDepth = depth
	}
	cp := s.mark()
	if !s.propagate() {
		s.Stats.NbConflicts++
		s.undoTo(cp)
		return Unsat
	}
	s.eliminatePure()
	// Satisfaction check, with a catch-up for clauses made true outside
	// direct propagation but not yet flagged.
	allSat := true
	for idx, c := range s.clauses {
		if c.satisfied {
			continue
		}
		if s.clauseTrue(c) {
			s.satisfyClause(int32(idx))
		} else {
			allSat = false
			break
		}
	}
	if allSat {
		return Sat
	}
	x := s.chooseVar()
	if x == -1 {
		// All variables bound yet some clause is unsatisfied.
		return Unsat
	}
	cp2 := s.mark()
	s.Stats.NbDecisions++
	s.model[x] = bindFalse
	s.logAssign(x)
	s.markSatisfiedClauses()
	res := s.dpll(depth + 1)
	if res != Unsat {
		// Sat or Timeout: leave the trail to the caller.
		return res
	}
	s.undoTo(cp2)
	s.Stats.NbDecisions++
	s.model[x] = bindTrue
	s.logAssign(x)
	s.markSatisfiedClauses()
	res = s.dpll(depth + 1)
	if res == Unsat {
		s.undoTo(cp)
	}
	return res
}

// Model returns a slice that associates, to each variable, its binding.
// If s's status is not Sat, the method will panic.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("cannot call Model() from a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	for i, b := range s.model {
		res[i] = b == bindTrue
	}
	return res
}

// OutputModel outputs the result for the problem on stdout,
// in DIMACS result notation.
func (s *Solver) OutputModel() {
	switch s.status {
	case Sat:
		fmt.Printf("s SATISFIABLE\nv ")
		for i, val := range s.model {
			if val == bindFalse {
				fmt.Printf("%d ", -i-1)
			} else {
				fmt.Printf("%d ", i+1)
			}
		}
		fmt.Printf("\n")
	case Unsat:
		fmt.Printf("s UNSATISFIABLE\n")
	default:
		fmt.Printf("s UNKNOWN\n")
	}
}
