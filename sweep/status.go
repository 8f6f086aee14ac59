package sweep

import (
	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
)

// Status is the capability set §9 (Design Notes, "Polymorphic status")
// requires the sweep engine to be parameterized over, rather than bound to
// a concrete status-structure type: set_sweep_x, insert, remove, pred,
// succ, lower_bound_by_y, range_by_y, snapshot_order, validate_invariants.
//
// Three implementations satisfy Status: StatusArray (the sorted-array
// baseline), StatusTreap (deterministic-priority Treap), and StatusRBT
// (red-black tree). All three must produce bit-identical SnapshotOrder
// under identical input (§4.6).
type Status interface {
	// SetSweepX updates the comparator's current sweep position. Must be
	// called before any other operation at a new event point.
	SetSweepX(x rational.Rational)

	// Insert adds id to the active set. It returns a
	// *sweeperr.SweepStatusError{VerticalSegmentNotAllowed} if the
	// underlying segment is vertical, or
	// *sweeperr.SweepStatusError{DuplicateSegmentId} if id is already
	// present.
	Insert(id segstore.SegmentId) error

	// Remove deletes id from the active set. It returns a
	// *sweeperr.SweepStatusError{SegmentNotFound} if id is not present.
	Remove(id segstore.SegmentId) error

	// Pred returns the active id ordered immediately before id, and
	// whether one exists.
	Pred(id segstore.SegmentId) (segstore.SegmentId, bool)

	// Succ returns the active id ordered immediately after id, and
	// whether one exists.
	Succ(id segstore.SegmentId) (segstore.SegmentId, bool)

	// LowerBoundByY returns the smallest active id with
	// y(id, sweep_x) >= yMin, and whether one exists.
	LowerBoundByY(yMin rational.Rational) (segstore.SegmentId, bool)

	// RangeByY returns, in order, every active id with
	// yMin <= y(id, sweep_x) <= yMax.
	RangeByY(yMin, yMax rational.Rational) []segstore.SegmentId

	// SnapshotOrder returns every active id, in order.
	SnapshotOrder() []segstore.SegmentId

	// ValidateInvariants performs a linear check that every adjacent pair
	// in SnapshotOrder satisfies the comparator's strict order.
	ValidateInvariants() bool
}
