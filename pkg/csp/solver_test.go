package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func notEqual(c *Constraint[struct{}], values []int, _ struct{}) bool {
	return values[c.Variable(0)] != values[c.Variable(1)]
}

func binaryDiffRelevance(p *Problem[struct{}], focal int, assigned AssignedQuery, out []*Constraint[struct{}]) []*Constraint[struct{}] {
	other := 1 - focal
	if assigned(other) {
		out = append(out, p.Constraint(0))
	}
	return out
}

func newBinaryDiffProblem(domainSize int) *Problem[struct{}] {
	p := NewProblem[struct{}](2, 1)
	p.SetDomainSize(0, domainSize)
	p.SetDomainSize(1, domainSize)
	c := NewConstraint[struct{}](2, notEqual)
	c.SetVariable(0, 0)
	c.SetVariable(1, 1)
	p.SetConstraint(0, c)
	return p
}

func TestBinaryDiff(t *testing.T) {
	p := newBinaryDiffProblem(2)
	values := make([]int, 2)
	ok, _ := Solve(p, values, struct{}{}, binaryDiffRelevance, nil, nil)
	require.True(t, ok)
	require.True(t, (values[0] == 0 && values[1] == 1) || (values[0] == 1 && values[1] == 0))
}

func TestBinaryImpossible(t *testing.T) {
	p := newBinaryDiffProblem(1)
	values := make([]int, 2)
	ok, _ := Solve(p, values, struct{}{}, binaryDiffRelevance, nil, nil)
	require.False(t, ok)
}

func TestSolveAllThreeStrategiesAgree(t *testing.T) {
	for _, strategy := range []func(*Problem[struct{}], []int, struct{}, RelevanceFunc[struct{}], PreReductionFunc[struct{}], *Options) (bool, Stats){
		Solve[struct{}], SolveFC[struct{}], SolveOVars[struct{}],
	} {
		p := newBinaryDiffProblem(2)
		values := make([]int, 2)
		ok, _ := strategy(p, values, struct{}{}, binaryDiffRelevance, nil, nil)
		require.True(t, ok)
		require.NotEqual(t, values[0], values[1])
	}
}

// TestRestoration checks a Problem is observationally unchanged by a
// search call, success or failure.
func TestRestoration(t *testing.T) {
	p := newBinaryDiffProblem(2)
	before := []int{p.NumVariables(), p.NumConstraints(), p.DomainSize(0), p.DomainSize(1)}

	values := make([]int, 2)
	Solve(p, values, struct{}{}, binaryDiffRelevance, nil, nil)

	after := []int{p.NumVariables(), p.NumConstraints(), p.DomainSize(0), p.DomainSize(1)}
	require.Equal(t, before, after)

	p2 := newBinaryDiffProblem(1)
	beforeFail := []int{p2.NumVariables(), p2.NumConstraints(), p2.DomainSize(0), p2.DomainSize(1)}
	Solve(p2, make([]int, 2), struct{}{}, binaryDiffRelevance, nil, nil)
	afterFail := []int{p2.NumVariables(), p2.NumConstraints(), p2.DomainSize(0), p2.DomainSize(1)}
	require.Equal(t, beforeFail, afterFail)
}

// TestDeterminism checks two calls with identical inputs produce
// identical values and counters.
func TestDeterminism(t *testing.T) {
	p := newBinaryDiffProblem(2)
	v1 := make([]int, 2)
	ok1, stats1 := Solve(p, v1, struct{}{}, binaryDiffRelevance, nil, nil)

	p2 := newBinaryDiffProblem(2)
	v2 := make([]int, 2)
	ok2, stats2 := Solve(p2, v2, struct{}{}, binaryDiffRelevance, nil, nil)

	require.Equal(t, ok1, ok2)
	require.Equal(t, v1, v2)
	require.Equal(t, stats1, stats2)
}

// --- N-Queens-shaped soundness/counter tests, built locally to avoid a
// test-only dependency from pkg/csp onto examples/nqueens. ---

func buildQueens(n int) *Problem[struct{}] {
	numConstraints := n * (n - 1) / 2
	p := NewProblem[struct{}](n, numConstraints)
	for i := 0; i < n; i++ {
		p.SetDomainSize(i, n)
	}
	idx := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			c := NewConstraint[struct{}](2, queensCompatible)
			c.SetVariable(0, i)
			c.SetVariable(1, j)
			p.SetConstraint(idx, c)
			idx++
		}
	}
	return p
}

func queensCompatible(c *Constraint[struct{}], values []int, _ struct{}) bool {
	x0, x1 := c.Variable(0), c.Variable(1)
	y0, y1 := values[x0], values[x1]
	return y0 != y1 && x0+y1 != x1+y0 && x0+y0 != x1+y1
}

func queensPairIndex(n, a, b int) int {
	before := a*(n-1) - a*(a-1)/2
	return before + (b - a - 1)
}

func queensRelevance(p *Problem[struct{}], focal int, assigned AssignedQuery, out []*Constraint[struct{}]) []*Constraint[struct{}] {
	n := p.NumVariables()
	for other := 0; other < n; other++ {
		if other == focal || !assigned(other) {
			continue
		}
		a, b := focal, other
		if a > b {
			a, b = b, a
		}
		out = append(out, p.Constraint(queensPairIndex(n, a, b)))
	}
	return out
}

// TestSoundness checks that a reported solution satisfies every
// installed constraint, exercised on 6-Queens across all three
// strategies.
func TestSoundness(t *testing.T) {
	for _, strategy := range []func(*Problem[struct{}], []int, struct{}, RelevanceFunc[struct{}], PreReductionFunc[struct{}], *Options) (bool, Stats){
		Solve[struct{}], SolveFC[struct{}], SolveOVars[struct{}],
	} {
		p := buildQueens(6)
		values := make([]int, 6)
		ok, _ := strategy(p, values, struct{}{}, queensRelevance, nil, nil)
		require.True(t, ok)
		for _, c := range p.Constraints() {
			require.True(t, c.Check(values, struct{}{}))
		}
	}
}

// TestBacktrackCountFCNotWorseThanPlain: forward checking never explores
// more nodes than plain backtracking.
func TestBacktrackCountFCNotWorseThanPlain(t *testing.T) {
	for n := 5; n <= 8; n++ {
		_, plainStats := Solve(buildQueens(n), make([]int, n), struct{}{}, queensRelevance, nil, nil)
		_, fcStats := SolveFC(buildQueens(n), make([]int, n), struct{}{}, queensRelevance, nil, nil)
		require.LessOrEqualf(t, fcStats.Backtracks, plainStats.Backtracks, "n=%d", n)
	}
}

// TestFCUnsatisfiableImpliesPlainUnsatisfiable: forward checking never
// loses solutions, so if it fails, plain backtracking must also fail.
func TestFCUnsatisfiableImpliesPlainUnsatisfiable(t *testing.T) {
	for _, n := range []int{2, 3} {
		plainOK, _ := Solve(buildQueens(n), make([]int, n), struct{}{}, queensRelevance, nil, nil)
		fcOK, _ := SolveFC(buildQueens(n), make([]int, n), struct{}{}, queensRelevance, nil, nil)
		require.False(t, fcOK, "n=%d", n)
		require.Equal(t, plainOK, fcOK, "n=%d", n)
	}
}

func TestZeroVariableProblemSucceedsImmediately(t *testing.T) {
	p := NewProblem[struct{}](0, 0)
	ok, stats := Solve(p, nil, struct{}{}, func(*Problem[struct{}], int, AssignedQuery, []*Constraint[struct{}]) []*Constraint[struct{}] {
		return nil
	}, nil, nil)
	require.True(t, ok)
	require.Equal(t, 1, stats.Backtracks)
}

func TestValuesLengthMismatchPanics(t *testing.T) {
	p := newBinaryDiffProblem(2)
	require.Panics(t, func() {
		Solve(p, make([]int, 1), struct{}{}, binaryDiffRelevance, nil, nil)
	})
}

// TestPreReductionPrunesDomain exercises the pre-reduction hook: a unary
// "value must equal data" constraint is applied during pre-reduction, so
// search (with a relevance hook that never returns anything) still only
// ever sees the one surviving value.
func TestPreReductionPrunesDomain(t *testing.T) {
	c := NewConstraint[int](1, func(c *Constraint[int], values []int, data int) bool {
		return values[c.Variable(0)] == data
	})
	c.SetVariable(0, 0)

	p := NewProblem[int](1, 1)
	p.SetDomainSize(0, 3)
	p.SetConstraint(0, c)

	preReduce := func(p *Problem[int], variable int, out []*Constraint[int]) []*Constraint[int] {
		return append(out, p.Constraint(0))
	}
	noRelevance := func(p *Problem[int], focal int, assigned AssignedQuery, out []*Constraint[int]) []*Constraint[int] {
		return out
	}

	values := make([]int, 1)
	ok, _ := Solve(p, values, 1, noRelevance, preReduce, nil)
	require.True(t, ok)
	require.Equal(t, 1, values[0])
}
