package solver

// A watcherList is the watch index: for each literal, the indices of the
// clauses currently watching it. Every clause with at least two literals is
// watched by exactly two of its own literals at quiescent points; a unit
// clause is watched by its single literal; the empty clause by nothing.
type watcherList struct {
	wlist [][]int32
}

// initWatcherList builds the initial watch index: the first two literals of
// each clause become its watches. Initial population happens before any
// checkpoint exists, so it is not logged.
func (s *Solver) initWatcherList() {
	s.wl = watcherList{wlist: make([][]int32, s.nbVars*2)}
	for i, c := range s.clauses {
		switch c.Len() {
		case 0:
		case 1:
			lit := c.First()
			s.wl.wlist[lit] = append(s.wl.wlist[lit], int32(i))
		default:
			first := c.First()
			second := c.Second()
			s.wl.wlist[first] = append(s.wl.wlist[first], int32(i))
			s.wl.wlist[second] = append(s.wl.wlist[second], int32(i))
		}
	}
}

// watches returns true iff clause idx is currently watching lit.
func (s *Solver) watches(lit Lit, idx int32) bool {
	for _, id := range s.wl.wlist[lit] {
		if id == idx {
			return true
		}
	}
	return false
}

// watchAdd makes clause idx watch lit and logs the addition.
func (s *Solver) watchAdd(lit Lit, idx int32) {
	s.wl.wlist[lit] = append(s.wl.wlist[lit], idx)
	s.trail = append(s.trail, undoEntry{kind: undoWatchAdd, a: int32(lit), b: idx})
}

// watchRemove stops clause idx from watching lit and logs the removal.
// The clause must currently be watching lit.
func (s *Solver) watchRemove(lit Lit, idx int32) {
	removeID(&s.wl.wlist[lit], idx)
	s.trail = append(s.trail, undoEntry{kind: undoWatchRemove, a: int32(lit), b: idx})
}

// removeID removes the first occurrence of idx from lst, preserving the
// order of the remaining elements. The element *must* be present in lst.
func removeID(lst *[]int32, idx int32) {
	i := 0
	for (*lst)[i] != idx {
		i++
	}
	copy((*lst)[i:], (*lst)[i+1:])
	*lst = (*lst)[:len(*lst)-1]
}
