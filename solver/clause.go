package solver

import "fmt"

// A Clause is a fixed list of Lit together with a satisfied flag.
// The flag is only ever mutated through the solver's trail, so that
// every false->true transition can be rolled back on backtrack.
type Clause struct {
	lits      []Lit
	satisfied bool
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Satisfied returns true iff the clause was flagged as satisfied
// under the current bindings.
func (c *Clause) Satisfied() bool {
	return c.satisfied
}

// litKeys returns the set of signed literal keys of the clause,
// i.e the CNF integer form of each lit. Used for subset tests.
func (c *Clause) litKeys() map[int32]struct{} {
	keys := make(map[int32]struct{}, len(c.lits))
	for _, lit := range c.lits {
		keys[lit.Int()] = struct{}{}
	}
	return keys
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}
