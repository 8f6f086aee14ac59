// Package segstore holds the canonicalized, immutable segment collection
// the sweep engine reads from, plus the exact pairwise intersection
// classifier. It is grounded on the role
// github.com/mikenye/geom2d/linesegment.LineSegment and
// linesegment.NewFromPoints play in the teacher library — a canonicalizing
// constructor over an immutable two-point value — generalized from that
// package's upper/lower (by Y, then X) ordering to this module's
// lexicographic (by X, then Y) ordering over the exact fixedpoint grid.
package segstore

import (
	"fmt"

	"github.com/jiangshengdev/sweep-line/fixedpoint"
)

// SegmentId is a dense, monotonically assigned index into a Store. Once
// assigned, an id is stable for the lifetime of the sweep.
type SegmentId uint32

// Segment is an immutable, canonicalized line segment on the fixed-point
// grid.
type Segment struct {
	A           fixedpoint.PointI64
	B           fixedpoint.PointI64
	SourceIndex int
}

// New canonicalizes (a, b) so that A <= B in PointI64 order, and returns the
// resulting Segment. It panics if a == b
// — zero-length segments are rejected at the preprocessing boundary (see
// package preprocess), never constructed here.
func New(a, b fixedpoint.PointI64, sourceIndex int) Segment {
	if a.Eq(b) {
		panic("segstore: zero-length segment")
	}
	if b.Cmp(a) < 0 {
		a, b = b, a
	}
	return Segment{A: a, B: b, SourceIndex: sourceIndex}
}

// IsVertical reports whether the segment's two endpoints share an X
// coordinate.
func (s Segment) IsVertical() bool {
	return s.A.X == s.B.X
}

// YRange returns the segment's inclusive Y span, ordered min <= max.
func (s Segment) YRange() (min, max fixedpoint.Coord) {
	if s.A.Y <= s.B.Y {
		return s.A.Y, s.B.Y
	}
	return s.B.Y, s.A.Y
}

// String returns "A-B".
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}

// Store is an append-only, indexed collection of canonicalized segments.
type Store struct {
	segments []Segment
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Push appends seg and returns its newly assigned SegmentId.
func (st *Store) Push(seg Segment) SegmentId {
	id := SegmentId(len(st.segments))
	st.segments = append(st.segments, seg)
	return id
}

// Get returns the segment stored at id. It panics if id is out of range,
// which indicates an engine bug — ids are only ever sourced from Push's
// return value or from iteration over an existing Store.
func (st *Store) Get(id SegmentId) Segment {
	return st.segments[id]
}

// Len returns the number of segments in the store.
func (st *Store) Len() int {
	return len(st.segments)
}

// Ids returns every SegmentId currently in the store, in ascending order.
func (st *Store) Ids() []SegmentId {
	ids := make([]SegmentId, len(st.segments))
	for i := range ids {
		ids[i] = SegmentId(i)
	}
	return ids
}
