package csp

// AssignedQuery answers "is this variable currently assigned?" without
// exposing the solver's internal bitset representation to relevance
// hooks.
type AssignedQuery func(variable int) bool

// RelevanceFunc is the caller-supplied relevance checklist hook: given the
// problem, the variable whose tentative assignment just triggered a
// consistency check (the focal variable), and a query over which
// variables are currently assigned, it appends every constraint that
// could be falsified by the new assignment to out and returns the
// extended slice.
//
// out is solver-owned scratch reused across calls within one search (see
// the per-node allocation note in the package doc) — implementations
// should only append to it, never retain it past the call.
//
// The hook must return every constraint whose predicate could be
// falsified by the focal assignment given the variables assigned so far,
// and should avoid returning constraints that depend on still-unassigned
// variables. Order is not significant to correctness, only to cost.
type RelevanceFunc[D any] func(p *Problem[D], focal int, assigned AssignedQuery, out []*Constraint[D]) []*Constraint[D]

// PreReductionFunc is the data-driven pre-reduction hook: invoked once per
// variable before search starts, it appends to out the constraints that
// should be checked against the fixed external context to decide which
// values of that variable's initial Domain are provably inconsistent
// before any variable is assigned. If nil, pre-reduction is skipped.
type PreReductionFunc[D any] func(p *Problem[D], variable int, out []*Constraint[D]) []*Constraint[D]
