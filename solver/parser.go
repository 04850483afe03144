package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoHeader is returned when a CNF source contains no valid "p cnf" header
// line before its first clause. Callers can test for it with errors.Is.
var ErrNoHeader = errors.New("no valid CNF header")

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent problem. The argument is supposed to be a well-formed CNF:
// an empty inner slice denotes the empty (unsatisfiable) clause.
func ParseSlice(cnf [][]int) *Problem {
	var pb Problem
	for _, line := range cnf {
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				panic("null literal in clause")
			}
			lits[j] = IntToLit(val)
			if v := int(lits[j].Var()); v >= pb.NbVars {
				pb.NbVars = v + 1
			}
		}
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
	return &pb
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// The int can be negated.
// All spaces before the int value are ignored.
// Can return EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, errors.Wrap(err, "could not read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "cannot read int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	return res, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, errors.Errorf("invalid syntax %q in header", line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Errorf("nbvars not an int : %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Errorf("nbClauses not an int : %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF source and returns the corresponding Problem.
// Comment lines and blank lines are ignored. A missing or malformed header is
// an error wrapping ErrNoHeader. If the source declares more clauses than it
// contains, the resulting problem is silently truncated to the clauses
// actually present; clause lines beyond the declared count are ignored.
func ParseCNF(f io.Reader) (*Problem, error) {
	r := bufio.NewReader(f)
	var pb Problem
	nbClauses := -1
	b, err := r.ReadByte()
	for err == nil {
		if b == 'c' { // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		} else if b == 'p' {
			if nbClauses >= 0 { // Duplicate header: treat as a comment
				b, err = r.ReadByte()
				for err == nil && b != '\n' {
					b, err = r.ReadByte()
				}
			} else {
				pb.NbVars, nbClauses, err = parseHeader(r)
				if err != nil {
					return nil, errors.Wrapf(ErrNoHeader, "cannot parse CNF header: %v", err)
				}
				pb.Clauses = make([]*Clause, 0, nbClauses)
			}
		} else if isSpace(b) {
			// Blank space between clauses, skip
		} else {
			if nbClauses < 0 {
				return nil, errors.Wrap(ErrNoHeader, "clause found before header")
			}
			if len(pb.Clauses) == nbClauses {
				// Declared clause count reached: ignore the rest of the source
				return &pb, nil
			}
			lits := make([]Lit, 0, 3) // Make room for some lits to improve performance
			for {
				val, err := readInt(&b, r)
				if err == io.EOF {
					if len(lits) != 0 { // This is not a trailing space at the end...
						return nil, errors.New("unfinished clause while EOF found")
					}
					break // When there are only several useless spaces at the end of the file, that is ok
				}
				if err != nil {
					return nil, errors.Wrap(err, "cannot parse clause")
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, NewClause(lits))
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, errors.Errorf("invalid literal %d for problem with %d vars only", val, pb.NbVars)
				}
				lits = append(lits, IntToLit(val))
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	if nbClauses < 0 {
		return nil, ErrNoHeader
	}
	return &pb, nil
}
