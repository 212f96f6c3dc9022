package csp

import "github.com/sirupsen/logrus"

// Options configures a Solve*/SolveFC/SolveOVars call. The zero value
// (or a nil *Options) selects silent tracing — the common case. Options
// are resolved to a logger once per call; with no logger, each trace
// point costs one nil comparison and no allocation.
type Options struct {
	// Logger, if non-nil, receives Debug-level search tracing: node
	// entry, value trials, domain wipeouts during forward checking, and
	// backtracks, each with "node"/"var"/"value" fields.
	Logger *logrus.Entry
}

func (o *Options) logger() *logrus.Entry {
	if o == nil {
		return nil
	}
	return o.Logger
}
