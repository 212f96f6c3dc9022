// Package csp provides a finite-domain constraint satisfaction solving
// engine: variables with integer domains, arbitrary-arity constraints, and
// three interchangeable backtracking search strategies.
//
// The central design idea is a journal-based undo mechanism instead of
// persistent/copy-on-write data structures: search commits tentative
// domain reductions to a flat append-only stack and rewinds them in LIFO
// order on backtrack. This keeps the hot path allocation-free.
package csp

// Domain is the mutable, per-variable, per-search record of which values
// are still live. Values are encoded as the integers 0..n-1 where n is the
// variable's initial domain size.
//
// Removal is positional: the value at position j is deleted by shifting
// the tail down one slot and shrinking size, at a cost linear in the
// length of that tail. Restoration always
// re-appends at the current size, so values removed during a LIFO-ordered
// backtrack land back in a valid (if not necessarily original) slot —
// domains are unordered sets, not sequences, so slot identity does not
// matter.
type Domain struct {
	values []int
	size   int
}

// newDomain allocates a Domain holding the values 0..n-1.
func newDomain(n int) Domain {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return Domain{values: values, size: n}
}

// Size returns the number of values currently live in the domain.
func (d *Domain) Size() int {
	return d.size
}

// Value returns the value stored at position j. j must be < Size().
func (d *Domain) Value(j int) int {
	return d.values[j]
}

// IndexOf returns the position of v in the live prefix, or -1 if v is not
// currently live.
func (d *Domain) IndexOf(v int) int {
	for i := 0; i < d.size; i++ {
		if d.values[i] == v {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the value at position j, shifting the tail down one
// slot. The removed value is returned so callers can journal it.
func (d *Domain) RemoveAt(j int) int {
	v := d.values[j]
	copy(d.values[j:d.size-1], d.values[j+1:d.size])
	d.size--
	return v
}

// Restore re-inserts a previously removed value. Must only be called with
// values removed from this exact Domain, in LIFO order relative to other
// removals, per the DomainChangeStack contract.
func (d *Domain) Restore(v int) {
	d.values[d.size] = v
	d.size++
}
