package csp

// Problem is a CSP: an ordered sequence of variables (identified by
// position, each carrying an initial domain size) and an ordered sequence
// of constraints. Constraint order is part of the problem's public
// identity — external relevance-checklist hooks index into it by slot.
//
// A Problem owns its domain-size slots but not its constraints: Destroy
// releases the Problem without freeing the Constraint values installed
// into it — ownership of constraints stays with the caller. In Go this
// just means a Problem holds pointers and the garbage collector handles
// the rest; Destroy is kept as a documented no-op for callers porting
// code that expects an explicit lifecycle.
type Problem[D any] struct {
	domainSizes []int
	constraints []*Constraint[D]
}

// NewProblem creates a Problem with numVariables variable slots (all
// initial domain sizes 0) and numConstraints empty constraint slots.
func NewProblem[D any](numVariables, numConstraints int) *Problem[D] {
	if numVariables < 0 || numConstraints < 0 {
		panic(&UsageError{Msg: "problem variable/constraint counts must be >= 0"})
	}
	return &Problem[D]{
		domainSizes: make([]int, numVariables),
		constraints: make([]*Constraint[D], numConstraints),
	}
}

// NumVariables returns the number of variable slots.
func (p *Problem[D]) NumVariables() int { return len(p.domainSizes) }

// NumConstraints returns the number of constraint slots.
func (p *Problem[D]) NumConstraints() int { return len(p.constraints) }

// SetDomainSize sets the initial domain cardinality of variable i to d;
// the variable's live values are then the integers 0..d-1.
func (p *Problem[D]) SetDomainSize(i, d int) {
	if i < 0 || i >= len(p.domainSizes) {
		panic(&UsageError{Msg: "variable index out of range"})
	}
	if d < 0 {
		panic(&UsageError{Msg: "domain size must be >= 0"})
	}
	p.domainSizes[i] = d
}

// DomainSize returns the initial domain cardinality of variable i.
func (p *Problem[D]) DomainSize(i int) int {
	if i < 0 || i >= len(p.domainSizes) {
		panic(&UsageError{Msg: "variable index out of range"})
	}
	return p.domainSizes[i]
}

// SetConstraint installs c at slot k.
func (p *Problem[D]) SetConstraint(k int, c *Constraint[D]) {
	if k < 0 || k >= len(p.constraints) {
		panic(&UsageError{Msg: "constraint slot out of range"})
	}
	p.constraints[k] = c
}

// Constraint returns the constraint installed at slot k, or nil if the
// slot is empty.
func (p *Problem[D]) Constraint(k int) *Constraint[D] {
	if k < 0 || k >= len(p.constraints) {
		panic(&UsageError{Msg: "constraint slot out of range"})
	}
	return p.constraints[k]
}

// Constraints returns the full slice of constraint slots, in installation
// order. Callers must not mutate the returned slice.
func (p *Problem[D]) Constraints() []*Constraint[D] {
	return p.constraints
}

// totalDomainSize returns Σ domain_sizes[i], the bound used to size the
// per-search DomainChangeStack.
func (p *Problem[D]) totalDomainSize() int {
	total := 0
	for _, d := range p.domainSizes {
		total += d
	}
	return total
}

// Destroy releases the Problem. Constraints installed into it are not
// destroyed — ownership remains with the caller. A documented no-op
// left to the garbage collector.
func (p *Problem[D]) Destroy() {}
