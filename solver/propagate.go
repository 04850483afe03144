package solver

// Two-watched-literal unit propagation. A clause only needs to be inspected
// when one of its two watched literals becomes false; all other assignments
// leave it untouched, which is what makes this scheme cheaper than rescanning
// the whole clause set on every assignment.

// assign binds the variable of lit so that lit becomes true, logs the
// assignment, and flags every not-yet-satisfied clause watching lit as
// satisfied (those clauses are now true under the new binding).
func (s *Solver) assign(lit Lit) {
	v := lit.Var()
	if lit.IsPositive() {
		s.model[v] = bindTrue
	} else {
		s.model[v] = bindFalse
	}
	s.logAssign(v)
	for _, idx := range s.wl.wlist[lit] {
		if !s.clauses[idx].satisfied {
			s.satisfyClause(idx)
		}
	}
}

// clauseFalse returns true iff every literal of c evaluates false under the
// current bindings. Vacuously true for the empty clause.
func (s *Solver) clauseFalse(c *Clause) bool {
	for _, lit := range c.lits {
		if s.litStatus(lit) != Unsat {
			return false
		}
	}
	return true
}

// propagate assigns all logically forced literals, relocating watches as
// needed, and returns false iff a conflict was reached. On conflict the
// trail is left as is; the caller rolls back through its checkpoint.
func (s *Solver) propagate() bool {
	// Seed the queue with the sole unassigned literal of every
	// not-yet-satisfied clause that has exactly one.
	queue := make([]Lit, 0, s.nbVars)
	for _, c := range s.clauses {
		if c.satisfied {
			continue
		}
		var unit Lit
		nbUnassigned := 0
		for _, lit := range c.lits {
			if s.model[lit.Var()] == unassigned {
				if nbUnassigned == 0 {
					unit = lit
				}
				nbUnassigned++
			}
		}
		if nbUnassigned == 1 {
			queue = append(queue, unit)
		}
	}
	for ptr := 0; ptr < len(queue); ptr++ {
		lit := queue[ptr]
		if s.model[lit.Var()] == unassigned {
			s.assign(lit)
			s.Stats.NbPropagations++
		}
		opp := lit.Negation()
		// Walk the clauses watching the now-false opposite literal. The
		// index only advances when the clause kept its watch: a relocation
		// shifts the next watcher into the current slot.
		i := 0
		for i < len(s.wl.wlist[opp]) {
			idx := s.wl.wlist[opp][i]
			c := s.clauses[idx]
			if c.satisfied {
				i++
				continue
			}
			// Find the other literal this clause watches, by probing each
			// literal's watch list for the clause's index.
			other := Lit(-1)
			for _, l := range c.lits {
				if l == opp {
					continue
				}
				if s.watches(l, idx) {
					other = l
					break
				}
			}
			if other == -1 {
				// Single-watch clause (unit at construction). Conflict if it
				// is fully false; otherwise requeue opp so it is revisited
				// once the pending assignments are processed.
				if s.clauseFalse(c) {
					return false
				}
				queue = append(queue, opp)
				i++
				continue
			}
			if s.litStatus(other) == Sat {
				// Clause already true through its other watch.
				i++
				continue
			}
			// Try to relocate the watch to a literal that is unassigned or
			// true and not already watched.
			relocated := false
			for _, nl := range c.lits {
				if nl == opp || nl == other {
					continue
				}
				if st := s.litStatus(nl); st != Unsat {
					s.watchRemove(opp, idx)
					s.watchAdd(nl, idx)
					relocated = true
					break
				}
			}
			if relocated {
				continue
			}
			// No replacement: the other watch is the last hope.
			if s.model[other.Var()] == unassigned {
				s.assign(other)
				s.Stats.NbPropagations++
				queue = append(queue, other)
			} else {
				return false
			}
			i++
		}
	}
	return true
}

// propagateBasic is a reference unit propagation that rescans the whole
// clause set until fixpoint, without touching the watch index or satisfied
// flags. The driver uses the watched version; this one is kept for
// differential testing.
func (s *Solver) propagateBasic() bool {
	progress := true
	for progress {
		progress = false
		for _, c := range s.clauses {
			if c.satisfied {
				continue
			}
			var unit Lit
			nbUnassigned := 0
			sat := false
			for _, lit := range c.lits {
				switch s.litStatus(lit) {
				case Indet:
					unit = lit
					nbUnassigned++
				case Sat:
					sat = true
				}
				if sat {
					break
				}
			}
			if sat {
				continue
			}
			if nbUnassigned == 0 {
				return false
			}
			if nbUnassigned == 1 {
				v := unit.Var()
				if unit.IsPositive() {
					s.model[v] = bindTrue
				} else {
					s.model[v] = bindFalse
				}
				s.logAssign(v)
				progress = true
			}
		}
	}
	return true
}
