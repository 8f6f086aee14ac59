package sweep

import (
	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
)

// StepKind names the two kinds of trace step the engine emits.
type StepKind int8

const (
	// PointBatch is a step that processed every event scheduled at a
	// single point.
	PointBatch StepKind = iota
	// VerticalFlush is a step that resolved the deferred vertical
	// segments at an x column.
	VerticalFlush
)

// String returns a human-readable name for k.
func (k StepKind) String() string {
	switch k {
	case PointBatch:
		return "PointBatch"
	case VerticalFlush:
		return "VerticalFlush"
	default:
		return "unknown"
	}
}

// TraceStep is one recorded action of the sweep, grounded on
// github.com/mikenye/geom2d/linesegment's own design principle (§9, "Trace
// as first-class output... not a debugger") of treating execution detail
// as structured data rather than only as log lines.
type TraceStep struct {
	Kind StepKind
	// SweepX is the x coordinate the sweep advanced to for this step.
	SweepX rational.Rational
	// Point is the event point processed, valid only when Kind ==
	// PointBatch.
	Point rational.PointRat
	// HasPoint reports whether Point is valid (PointBatch steps always
	// set it; VerticalFlush steps never do).
	HasPoint bool
	// Events is a human-readable description of each event processed in
	// this step.
	Events []string
	// Active is the post-mutation snapshot of the status structure's
	// order.
	Active []segstore.SegmentId
	// Intersections holds every GroupRecord first observed in this step.
	Intersections []GroupRecord
	// Notes carries diagnostic detail: for a PointBatch step, the U/L/C/V_new
	// batch sizes; for either kind, one note per collinear-overlapping pair
	// met. Pairs skipped from scheduling because they only touch at an
	// endpoint get no note.
	Notes []string
}

// Trace is the complete, replayable record of a sweep run.
type Trace struct {
	Warnings []string
	Steps    []TraceStep
}
