package csp

// Stats holds the benchmarking counters produced by one Solve/SolveFC/
// SolveOVars call. The counter lives in the per-call search state
// rather than a package-level variable, so the engine is safe to call
// concurrently on distinct problems, and is handed back to the caller
// as a return value rather than through an out-pointer.
type Stats struct {
	// Backtracks counts recursive search-step entries, not failed
	// branches specifically — it is the node count the benchmark
	// output format reports.
	Backtracks int
}
