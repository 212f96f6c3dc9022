package csp

// UsageError signals a caller invariant violation — an out-of-range
// variable or constraint index, a malformed arity — rather than a runtime
// search condition. These are programmer bugs: the engine reports them
// by panicking with a *UsageError rather than threading a recoverable
// error value through the hot search path.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "csp: usage error: " + e.Msg }
