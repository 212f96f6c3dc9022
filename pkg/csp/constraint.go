package csp

// Predicate is a pure function of the constraint it belongs to, the full
// assignment buffer, and an immutable context value D shared across one
// search call. It must not mutate D or any engine state; the solver calls
// it only once the variables it depends on are, by the caller's
// relevance-hook contract, meaningfully assigned.
//
// D is an opaque context shared immutably across one search — a type
// parameter rather than an `any` so callers keep static typing on their
// puzzle-specific data without a type assertion on every predicate
// call.
type Predicate[D any] func(c *Constraint[D], values []int, data D) bool

// Constraint is a predicate of fixed arity plus the indices of the
// variables it inspects. Variable indices are not validated against any
// Problem by the engine: a caller convention (see the Sudoku example) may
// use indices >= the owning Problem's variable count to mean "this
// position refers to fixed external data, not an unknown" — the engine
// passes such indices through verbatim.
type Constraint[D any] struct {
	arity     int
	variables []int
	predicate Predicate[D]
}

// NewConstraint creates a constraint of the given arity. Variable
// positions are initialised to 0 and must be set with SetVariable before
// the constraint is installed into a Problem.
func NewConstraint[D any](arity int, predicate Predicate[D]) *Constraint[D] {
	if arity < 1 {
		panic(&UsageError{Msg: "constraint arity must be >= 1"})
	}
	return &Constraint[D]{
		arity:     arity,
		variables: make([]int, arity),
		predicate: predicate,
	}
}

// Arity returns the number of variables this constraint references.
func (c *Constraint[D]) Arity() int { return c.arity }

// SetVariable binds position p (0 <= p < Arity()) to variable index v.
func (c *Constraint[D]) SetVariable(p, v int) {
	if p < 0 || p >= c.arity {
		panic(&UsageError{Msg: "constraint variable position out of range"})
	}
	c.variables[p] = v
}

// Variable returns the variable index bound at position p.
func (c *Constraint[D]) Variable(p int) int {
	if p < 0 || p >= c.arity {
		panic(&UsageError{Msg: "constraint variable position out of range"})
	}
	return c.variables[p]
}

// Check evaluates the constraint's predicate against values/data.
func (c *Constraint[D]) Check(values []int, data D) bool {
	return c.predicate(c, values, data)
}

// references reports whether the constraint's variable list contains v at
// any position. Used by forward checking to find binary arcs between the
// focal variable and a not-yet-assigned variable.
func (c *Constraint[D]) references(v int) bool {
	for _, x := range c.variables {
		if x == v {
			return true
		}
	}
	return false
}
