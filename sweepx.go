// Package sweepx is the Phase-1 façade over this module's exact
// Bentley-Ottmann sweep kernel: given raw floating-point segments, it
// quantizes and canonicalizes them, runs the sweep, and returns both the
// intersection groups and the complete replayable trace. It is grounded on
// the role github.com/mikenye/geom2d's own root package plays for that
// library — a single entry point documenting the subsystems underneath
// ([preprocess], [segstore], [sweep], [session]) rather than reimplementing
// any of them.
//
// # Pipeline
//
// Run feeds its input through four stages, each owned by its own
// subpackage:
//
//  1. [preprocess.Run] quantizes each float64 coordinate onto the
//     fixed-point grid, canonicalizes endpoints, drops zero-length and
//     duplicate segments, and reports a [preprocess.Warning] for every
//     segment it drops.
//  2. The surviving segments populate a [segstore.Store].
//  3. [sweep.Engine] runs the Bentley-Ottmann sweep over the store,
//     choosing among the sorted-array, Treap, and red-black-tree
//     status-structure backends.
//  4. [session.Write] serializes the resulting intersection groups and
//     trace as byte-stable JSON, when a caller wants the replayable
//     artifact rather than the in-memory result.
//
// # Precision
//
// Every comparison downstream of preprocessing is performed in exact
// rational arithmetic (see [rational.Rational]); the only place floating
// point appears at all is the caller-facing input coordinates themselves.
package sweepx

import (
	"github.com/jiangshengdev/sweep-line/limits"
	"github.com/jiangshengdev/sweep-line/preprocess"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/session"
	"github.com/jiangshengdev/sweep-line/sweep"
)

func init() {
	logDebugf("sweepx debug logging enabled")
}

// Backend selects which sweep-status-structure implementation Run drives
// the sweep with. All three must produce identical results (§4.6);
// StatusTreap and StatusRBT exist for their different asymptotic profiles,
// not a different answer.
type Backend int8

const (
	// ArrayBackend uses the sorted-array status structure.
	ArrayBackend Backend = iota
	// TreapBackend uses the deterministic-priority Treap status structure.
	TreapBackend
	// RBTBackend uses the red-black-tree status structure.
	RBTBackend
)

// Result is the complete outcome of running the sweep over a batch of raw
// input segments.
type Result struct {
	// Store holds every segment admitted by preprocessing.
	Store *segstore.Store
	// Mapping has one entry per input segment: the SegmentId it was
	// admitted as, or nil if preprocessing dropped it.
	Mapping []*segstore.SegmentId
	// Warnings records every input segment preprocessing dropped.
	Warnings []preprocess.Warning
	// Groups is every emitted intersection group, across the whole sweep.
	Groups []sweep.GroupRecord
	// Trace is the complete, replayable record of the sweep.
	Trace sweep.Trace
}

// Run preprocesses inputs, then runs the sweep with the given backend and
// resource limits, returning the combined result or the first fatal error
// the sweep engine raised.
func Run(inputs []preprocess.InputSegment, backend Backend, lim limits.Limits) (*Result, error) {
	pre := preprocess.Run(inputs)

	var status sweep.Status
	switch backend {
	case TreapBackend:
		status = sweep.NewStatusTreap(pre.Store)
	case RBTBackend:
		status = sweep.NewStatusRBT(pre.Store)
	default:
		status = sweep.NewStatusArray(pre.Store)
	}

	eng := sweep.NewEngine(pre.Store, status, lim)
	groups, trace, err := eng.Run()
	if err != nil {
		return nil, err
	}

	for _, w := range pre.Warnings {
		trace.Warnings = append(trace.Warnings, w.String())
	}

	return &Result{
		Store:    pre.Store,
		Mapping:  pre.Mapping,
		Warnings: pre.Warnings,
		Groups:   groups,
		Trace:    trace,
	}, nil
}

// WriteSession preprocesses inputs, runs the sweep, and serializes the
// result as byte-stable session JSON in one call.
func WriteSession(inputs []preprocess.InputSegment, backend Backend, lim limits.Limits) ([]byte, error) {
	res, err := Run(inputs, backend, lim)
	if err != nil {
		return nil, err
	}
	return session.Write(res.Store, res.Trace, lim)
}
