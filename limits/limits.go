// Package limits defines the sweep engine's fail-fast resource ceilings and
// a functional-options constructor for them, grounded on the pattern
// github.com/mikenye/geom2d/options uses for its own GeometryOptionsFunc /
// ApplyGeometryOptions / WithEpsilon.
package limits

const (
	// DefaultMaxSessionBytes is the default ceiling on the serialized
	// session JSON's byte size.
	DefaultMaxSessionBytes = 32 * 1024 * 1024
	// DefaultMaxTraceSteps is the default ceiling on the number of steps
	// appended to a Trace.
	DefaultMaxTraceSteps = 20_000
	// DefaultMaxTraceActiveEntriesTotal is the default ceiling on the sum,
	// over all steps, of |active|.
	DefaultMaxTraceActiveEntriesTotal = 3_500_000
	// DefaultMaxIntersections is the default ceiling on the number of
	// emitted PointIntersectionGroupRecords.
	DefaultMaxIntersections = 200_000
)

// Limits holds the fail-fast ceilings described in spec.md §3 and §6.3. Any
// breach aborts the run with a *sweeperr.LimitExceeded.
type Limits struct {
	// MaxSessionBytes bounds the serialized session JSON's byte size.
	MaxSessionBytes int64
	// MaxTraceSteps bounds the number of steps appended to a Trace.
	MaxTraceSteps int64
	// MaxTraceActiveEntriesTotal bounds the sum, over all steps, of
	// |active|.
	MaxTraceActiveEntriesTotal int64
	// MaxIntersections bounds the number of emitted
	// PointIntersectionGroupRecords.
	MaxIntersections int64
}

// Option configures a Limits value. Functions that accept an Option
// parameter allow callers to override individual ceilings without touching
// the others.
type Option func(*Limits)

// Default returns the Limits described in spec.md §3, modified by opts in
// the order given.
func Default(opts ...Option) Limits {
	l := Limits{
		MaxSessionBytes:            DefaultMaxSessionBytes,
		MaxTraceSteps:              DefaultMaxTraceSteps,
		MaxTraceActiveEntriesTotal: DefaultMaxTraceActiveEntriesTotal,
		MaxIntersections:           DefaultMaxIntersections,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithMaxSessionBytes overrides MaxSessionBytes. A non-positive value
// disables the ceiling check entirely — callers that want "no trace" rather
// than "unlimited trace" should omit the trace instead.
func WithMaxSessionBytes(n int64) Option {
	return func(l *Limits) { l.MaxSessionBytes = n }
}

// WithMaxTraceSteps overrides MaxTraceSteps.
func WithMaxTraceSteps(n int64) Option {
	return func(l *Limits) { l.MaxTraceSteps = n }
}

// WithMaxTraceActiveEntriesTotal overrides MaxTraceActiveEntriesTotal.
func WithMaxTraceActiveEntriesTotal(n int64) Option {
	return func(l *Limits) { l.MaxTraceActiveEntriesTotal = n }
}

// WithMaxIntersections overrides MaxIntersections.
func WithMaxIntersections(n int64) Option {
	return func(l *Limits) { l.MaxIntersections = n }
}
