// Package sweeperr defines the typed error taxonomy the sweep kernel raises.
// It is grounded on the shape of github.com/mikenye/geom2d/types'
// PointOrientation enum, but deliberately diverges from that enum's
// String() method, which panics on an unrecognized value: every error in
// this package crosses a JSON trace boundary, so String() here always
// returns a printable name instead of panicking the caller.
package sweeperr

import "fmt"

// QuantizeErrorKind classifies why a floating-point value could not be
// quantized onto the fixed-point grid. This is the one error kind raised at
// the preprocessing boundary rather than from inside the sweep kernel.
type QuantizeErrorKind int8

const (
	// NonFinite means the input was NaN or +/-Inf.
	NonFinite QuantizeErrorKind = iota
	// OutOfRange means |value| > 1, the domain fixedpoint.Quantize accepts.
	OutOfRange
)

// String returns a human-readable name for k.
func (k QuantizeErrorKind) String() string {
	switch k {
	case NonFinite:
		return "NonFinite"
	case OutOfRange:
		return "OutOfRange"
	default:
		return "unknown"
	}
}

// QuantizeError reports a rejected input value at the preprocessing
// boundary (spec §4.1). It is never raised by the sweep kernel itself —
// only by fixedpoint.Quantize, the one function in this module that accepts
// raw floating-point input.
type QuantizeError struct {
	Kind QuantizeErrorKind
}

func (e *QuantizeError) Error() string {
	switch e.Kind {
	case NonFinite:
		return "sweeperr: value is not finite"
	case OutOfRange:
		return "sweeperr: value magnitude exceeds 1"
	default:
		return "sweeperr: quantize error"
	}
}

// LimitKind names which configured ceiling a LimitExceeded error reports.
type LimitKind int8

const (
	// TraceSteps is the max_trace_steps ceiling.
	TraceSteps LimitKind = iota
	// ActiveEntriesTotal is the max_trace_active_entries_total ceiling.
	ActiveEntriesTotal
	// Intersections is the max_intersections ceiling.
	Intersections
	// SessionBytes is the max_session_bytes ceiling.
	SessionBytes
)

// String returns a human-readable name for k.
func (k LimitKind) String() string {
	switch k {
	case TraceSteps:
		return "TraceSteps"
	case ActiveEntriesTotal:
		return "ActiveEntriesTotal"
	case Intersections:
		return "Intersections"
	case SessionBytes:
		return "SessionBytes"
	default:
		return "unknown"
	}
}

// remediation returns a one-sentence, kind-specific piece of actionable
// advice, per §7's requirement that LimitExceeded carry a remediation hint.
func (k LimitKind) remediation() string {
	switch k {
	case TraceSteps:
		return "reduce input size or raise MaxTraceSteps"
	case ActiveEntriesTotal:
		return "reduce input size or raise MaxTraceActiveEntriesTotal"
	case Intersections:
		return "reduce input size or raise MaxIntersections"
	case SessionBytes:
		return "disable the trace or raise MaxSessionBytes"
	default:
		return "adjust the configured limit"
	}
}

// LimitExceeded reports a breached fail-fast ceiling. It is always fatal
// for the run in progress.
type LimitExceeded struct {
	Kind   LimitKind
	Limit  int64
	Actual int64
}

func (e *LimitExceeded) Error() string {
	return fmt.Sprintf("sweeperr: %s limit exceeded (limit=%d, actual=%d): %s",
		e.Kind, e.Limit, e.Actual, e.Kind.remediation())
}

// SweepStatusKind names the status-structure invariant an operation
// violated.
type SweepStatusKind int8

const (
	// VerticalSegmentNotAllowed means insert was called with a vertical
	// segment; the status structure never holds verticals.
	VerticalSegmentNotAllowed SweepStatusKind = iota
	// DuplicateSegmentId means insert was called with an id already
	// present.
	DuplicateSegmentId
	// SegmentNotFound means remove was called with an id not present.
	SegmentNotFound
)

// String returns a human-readable name for k.
func (k SweepStatusKind) String() string {
	switch k {
	case VerticalSegmentNotAllowed:
		return "VerticalSegmentNotAllowed"
	case DuplicateSegmentId:
		return "DuplicateSegmentId"
	case SegmentNotFound:
		return "SegmentNotFound"
	default:
		return "unknown"
	}
}

// SweepStatusError reports a sweep-status invariant violation. These
// indicate an engine bug, not bad input — correct engine code never
// triggers one.
type SweepStatusError struct {
	Kind      SweepStatusKind
	SegmentId uint32
}

func (e *SweepStatusError) Error() string {
	return fmt.Sprintf("sweeperr: sweep status error %s (segment=%d)", e.Kind, e.SegmentId)
}

// ArithmeticOverflow reports that an intermediate computation — currently
// only y(s, x) — could not be formed without overflowing its documented
// precision bound. It is always fatal.
type ArithmeticOverflow struct {
	Operation string
}

func (e *ArithmeticOverflow) Error() string {
	return fmt.Sprintf("sweeperr: arithmetic overflow in %s", e.Operation)
}
