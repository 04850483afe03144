package solver

// The trail is a chronological log of every reversible mutation made during
// the search: variable assignments, satisfied-flag flips and watch list
// edits. Entries are stored contiguously; a checkpoint is just a saved
// length, and undoing to a checkpoint pops entries one by one, applying each
// entry's inverse.

type undoKind uint8

const (
	undoAssign undoKind = iota
	undoClauseSat
	undoWatchAdd
	undoWatchRemove
)

// An undoEntry is a tagged record of one mutation.
// The meaning of a & b depends on the kind:
// undoAssign: a is the Var that was bound;
// undoClauseSat: a is the clause index whose flag flipped false->true;
// undoWatchAdd / undoWatchRemove: a is the Lit slot, b the clause index.
type undoEntry struct {
	kind undoKind
	a, b int32
}

// A checkpoint is a position in the trail. Undoing to it restores
// assignments, satisfied flags and watch membership to their state
// when the checkpoint was taken.
type checkpoint int

func (s *Solver) mark() checkpoint {
	return checkpoint(len(s.trail))
}

func (s *Solver) logAssign(v Var) {
	s.trail = append(s.trail, undoEntry{kind: undoAssign, a: int32(v)})
}

// satisfyClause flips the clause's satisfied flag and logs the transition.
// Must only be called on clauses not yet satisfied.
func (s *Solver) satisfyClause(idx int32) {
	s.clauses[idx].satisfied = true
	s.trail = append(s.trail, undoEntry{kind: undoClauseSat, a: idx})
}

// undoTo rolls the trail back to the given checkpoint, most recent
// entry first.
func (s *Solver) undoTo(cp checkpoint) {
	for len(s.trail) > int(cp) {
		e := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		switch e.kind {
		case undoAssign:
			s.model[e.a] = unassigned
		case undoClauseSat:
			s.clauses[e.a].satisfied = false
		case undoWatchAdd:
			removeID(&s.wl.wlist[e.a], e.b)
		case undoWatchRemove:
			s.wl.wlist[e.a] = append(s.wl.wlist[e.a], e.b)
		default:
			panic("invalid undo entry")
		}
	}
}
