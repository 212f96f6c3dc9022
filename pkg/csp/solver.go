package csp

import "github.com/sirupsen/logrus"

// strategy selects which of the three search skeletons a searchState
// runs. The skeleton (pick a variable, try its live values, recurse) is
// shared; strategy only changes variable selection and whether forward
// checking runs.
type strategy int

const (
	strategyPlain strategy = iota
	strategyForwardCheck
	strategyOVars
)

// Solve performs plain chronological backtracking: the lowest-indexed
// unassigned variable is picked at every step, and consistency is
// checked only at the focal variable via the relevance hook — no
// forward propagation into other variables' domains.
func Solve[D any](p *Problem[D], values []int, data D, relevance RelevanceFunc[D], preReduction PreReductionFunc[D], opts *Options) (bool, Stats) {
	return run(p, values, data, relevance, preReduction, opts, strategyPlain)
}

// SolveFC performs backtracking with forward checking: after each
// tentative assignment, every still-unassigned variable's domain is
// pruned of values inconsistent with the new assignment via the binary
// constraints the relevance hook surfaces for it; a domain wipeout
// immediately fails the current value without recursing further.
func SolveFC[D any](p *Problem[D], values []int, data D, relevance RelevanceFunc[D], preReduction PreReductionFunc[D], opts *Options) (bool, Stats) {
	return run(p, values, data, relevance, preReduction, opts, strategyForwardCheck)
}

// SolveOVars performs forward checking with dynamic minimum-remaining-
// values variable ordering: at each step the unassigned variable with
// the fewest live domain values is picked, with ties broken by lowest
// index so repeated searches stay deterministic.
func SolveOVars[D any](p *Problem[D], values []int, data D, relevance RelevanceFunc[D], preReduction PreReductionFunc[D], opts *Options) (bool, Stats) {
	return run(p, values, data, relevance, preReduction, opts, strategyOVars)
}

// searchState holds everything allocated for the duration of one search
// call: per-variable domains, the assignment bitset, the domain-change
// journal, and benchmarking/tracing state. The backtrack counter lives
// here rather than at package scope, so concurrent searches on distinct
// problems share nothing.
type searchState[D any] struct {
	problem      *Problem[D]
	values       []int
	data         D
	domains      []Domain
	assigned     assignedSet
	stack        domainChangeStack
	relevance    RelevanceFunc[D]
	preReduction PreReductionFunc[D]
	scratch      []*Constraint[D]
	stats        Stats
	logger       *logrus.Entry
	strategy     strategy
}

func run[D any](p *Problem[D], values []int, data D, relevance RelevanceFunc[D], preReduction PreReductionFunc[D], opts *Options, strat strategy) (bool, Stats) {
	n := p.NumVariables()
	if len(values) != n {
		panic(&UsageError{Msg: "values buffer length must equal the problem's variable count"})
	}

	domains := make([]Domain, n)
	for i := 0; i < n; i++ {
		domains[i] = newDomain(p.DomainSize(i))
	}

	st := &searchState[D]{
		problem:      p,
		values:       values,
		data:         data,
		domains:      domains,
		assigned:     newAssignedSet(n),
		stack:        newDomainChangeStack(p.totalDomainSize()),
		relevance:    relevance,
		preReduction: preReduction,
		logger:       opts.logger(),
		strategy:     strat,
	}

	if preReduction != nil {
		if !st.applyPreReduction() {
			return false, st.stats
		}
	}

	ok := st.backtrack()
	return ok, st.stats
}

// applyPreReduction runs the data-driven pre-reduction hook once per
// variable, dropping any value that makes a hook-selected constraint
// fail against the fixed external context. Returns false if a domain is
// wiped out entirely.
func (st *searchState[D]) applyPreReduction() bool {
	for i := 0; i < st.problem.NumVariables(); i++ {
		d := &st.domains[i]
		for j := 0; j < d.Size(); {
			v := d.Value(j)
			st.values[i] = v
			st.scratch = st.preReduction(st.problem, i, st.scratch[:0])
			consistent := true
			for _, c := range st.scratch {
				if !c.Check(st.values, st.data) {
					consistent = false
					break
				}
			}
			if consistent {
				j++
			} else {
				d.RemoveAt(j)
			}
		}
		if d.Size() == 0 {
			return false
		}
	}
	return true
}

func (st *searchState[D]) isAssigned(v int) bool { return st.assigned.Test(v) }

// selectVariable picks the next variable per the active strategy: lowest
// unassigned index for plain/FC, minimum-remaining-values for OVars.
// Returns -1 if every variable is assigned.
func (st *searchState[D]) selectVariable() int {
	if st.strategy != strategyOVars {
		return st.assigned.FirstUnmarked()
	}

	best := -1
	bestSize := -1
	n := st.problem.NumVariables()
	for i := 0; i < n; i++ {
		if st.assigned.Test(i) {
			continue
		}
		size := st.domains[i].Size()
		if best == -1 || size < bestSize {
			best, bestSize = i, size
			if size <= 1 {
				break
			}
		}
	}
	return best
}

// backtrack is the shared recursive search step. It increments the node
// counter on every entry, before the all-assigned check, so even a
// trivially satisfied problem reports one explored node.
func (st *searchState[D]) backtrack() bool {
	st.stats.Backtracks++

	if st.assigned.Full() {
		return true
	}

	index := st.selectVariable()
	d := &st.domains[index]

	st.assigned.Mark(index)
	for j := 0; j < d.Size(); j++ {
		v := d.Value(j)
		st.values[index] = v
		st.trace("try", index, v)

		if st.strategy == strategyPlain {
			if !st.consistent(index) {
				continue
			}
			if st.backtrack() {
				return true
			}
			continue
		}

		mark := st.stack.Mark()
		if st.consistent(index) && st.forwardCheck(index) {
			if st.backtrack() {
				return true
			}
		}
		st.stack.RestoreTo(mark, st.domains)
	}

	st.assigned.Unmark(index)
	st.trace("backtrack", index, -1)
	return false
}

// consistent runs the relevance hook for the focal variable and checks
// every constraint it returns. It runs in every strategy, not just
// plain mode: forward checking alone only surfaces binary arcs, so
// skipping it here would let non-binary constraints go untested.
func (st *searchState[D]) consistent(focal int) bool {
	st.scratch = st.relevance(st.problem, focal, st.isAssigned, st.scratch[:0])
	for _, c := range st.scratch {
		if !c.Check(st.values, st.data) {
			return false
		}
	}
	return true
}

// forwardCheck performs forward propagation: for every still-unassigned
// variable u, it asks the relevance hook which
// constraints are relevant to u, keeps the binary ones that reference
// both u and the focal variable, and prunes any live value of u that
// fails that predicate. A domain wipeout fails the whole call.
func (st *searchState[D]) forwardCheck(focal int) bool {
	n := st.problem.NumVariables()
	for u := 0; u < n; u++ {
		if u == focal || st.assigned.Test(u) {
			continue
		}

		st.scratch = st.relevance(st.problem, u, st.isAssigned, st.scratch[:0])
		var arc *Constraint[D]
		for _, c := range st.scratch {
			if c.Arity() == 2 && c.references(focal) && c.references(u) {
				arc = c
				break
			}
		}
		if arc == nil {
			continue
		}

		d := &st.domains[u]
		for j := 0; j < d.Size(); {
			w := d.Value(j)
			st.values[u] = w
			if arc.Check(st.values, st.data) {
				j++
				continue
			}
			removed := d.RemoveAt(j)
			st.stack.Push(u, removed)
		}

		if d.Size() == 0 {
			st.trace("wipeout", u, -1)
			return false
		}
	}
	return true
}

func (st *searchState[D]) trace(event string, variable, value int) {
	if st.logger == nil {
		return
	}
	st.logger.WithFields(logrus.Fields{
		"node":  st.stats.Backtracks,
		"event": event,
		"var":   variable,
		"value": value,
	}).Debug("csp search")
}
