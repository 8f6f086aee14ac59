package sweep

import "github.com/jiangshengdev/sweep-line/segstore"

// EventKind names which of the three event variants an Event carries.
type EventKind int8

const (
	// SegmentStart fires when the sweep reaches a segment's canonical A
	// endpoint.
	SegmentStart EventKind = iota
	// SegmentEnd fires when the sweep reaches a segment's canonical B
	// endpoint.
	SegmentEnd
	// Intersection fires at a previously scheduled crossing of two
	// segments.
	Intersection
)

// String returns a human-readable name for k.
func (k EventKind) String() string {
	switch k {
	case SegmentStart:
		return "SegmentStart"
	case SegmentEnd:
		return "SegmentEnd"
	case Intersection:
		return "Intersection"
	default:
		return "unknown"
	}
}

// Event is a tagged union over the three event variants the sweep engine
// processes: SegmentStart{Segment}, SegmentEnd{Segment}, and
// Intersection{A, B} with A <= B by id.
type Event struct {
	Kind    EventKind
	Segment segstore.SegmentId // valid for SegmentStart / SegmentEnd
	A, B    segstore.SegmentId // valid for Intersection; A <= B
}

// NewSegmentStart returns a SegmentStart event for id.
func NewSegmentStart(id segstore.SegmentId) Event {
	return Event{Kind: SegmentStart, Segment: id}
}

// NewSegmentEnd returns a SegmentEnd event for id.
func NewSegmentEnd(id segstore.SegmentId) Event {
	return Event{Kind: SegmentEnd, Segment: id}
}

// NewIntersectionEvent returns an Intersection event for the pair (a, b),
// canonicalizing so A <= B.
func NewIntersectionEvent(a, b segstore.SegmentId) Event {
	if a > b {
		a, b = b, a
	}
	return Event{Kind: Intersection, A: a, B: b}
}
