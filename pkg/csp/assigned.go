package csp

import "github.com/bits-and-blooms/bitset"

// assignedSet tracks which variables currently hold a tentative or
// confirmed assignment. Backed by bits-and-blooms/bitset, which gives
// the word-packed representation and next-clear-bit scan for free.
type assignedSet struct {
	bits *bitset.BitSet
	n    uint
}

func newAssignedSet(numVariables int) assignedSet {
	return assignedSet{bits: bitset.New(uint(numVariables)), n: uint(numVariables)}
}

func (a *assignedSet) Mark(i int)   { a.bits.Set(uint(i)) }
func (a *assignedSet) Unmark(i int) { a.bits.Clear(uint(i)) }
func (a *assignedSet) Test(i int) bool {
	return a.bits.Test(uint(i))
}

// Full reports whether every variable is assigned.
func (a *assignedSet) Full() bool {
	return a.bits.Count() == a.n
}

// FirstUnmarked returns the lowest-indexed unassigned variable, or -1 if
// all variables are assigned. Used by plain and FC mode, which pick the
// lowest-indexed unassigned variable (MRV mode overrides variable
// selection entirely; see solver.go).
func (a *assignedSet) FirstUnmarked() int {
	i, ok := a.bits.NextClear(0)
	if !ok || i >= a.n {
		return -1
	}
	return int(i)
}
