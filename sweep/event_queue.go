package sweep

import (
	"sort"

	"github.com/google/btree"
	"github.com/jiangshengdev/sweep-line/rational"
)

// qItem groups every Event scheduled at a single PointRat, grounded on
// github.com/mikenye/geom2d/linesegment's qItem / btree.BTreeG[qItem]
// event-queue design (sweepline_eventqueue.go), adapted from that package's
// "higher Y first" float64 ordering to this module's ascending PointRat
// order (§5: events process in strictly ascending PointRat order).
type qItem struct {
	point  rational.PointRat
	events []Event
}

func qItemLess(a, b qItem) bool {
	return a.point.Lt(b.point)
}

// EventQueue maps points to the events scheduled there, popped in ascending
// PointRat order with the intra-batch ordering defined by §4.7: all
// SegmentEnds (by id), then all Intersections (by (a,b)), then all
// SegmentStarts (by id).
type EventQueue struct {
	tree *btree.BTreeG[qItem]
}

// NewEventQueue returns an empty EventQueue.
func NewEventQueue() *EventQueue {
	return &EventQueue{tree: btree.NewG(32, qItemLess)}
}

// Schedule adds ev at p, merging into any existing batch at that point.
func (q *EventQueue) Schedule(p rational.PointRat, ev Event) {
	existing, ok := q.tree.Get(qItem{point: p})
	if ok {
		existing.events = append(existing.events, ev)
		q.tree.ReplaceOrInsert(existing)
		return
	}
	q.tree.ReplaceOrInsert(qItem{point: p, events: []Event{ev}})
}

// Empty reports whether the queue has no remaining batches.
func (q *EventQueue) Empty() bool {
	return q.tree.Len() == 0
}

// PopNextBatch removes and returns the earliest scheduled point and its
// events, stably ordered per §4.7.
func (q *EventQueue) PopNextBatch() (rational.PointRat, []Event) {
	item, ok := q.tree.DeleteMin()
	if !ok {
		return rational.PointRat{}, nil
	}
	return item.point, orderBatch(item.events)
}

// orderBatch sorts a batch's events into the canonical intra-batch order:
// SegmentEnds (by id) first, then Intersections (by (a,b)), then
// SegmentStarts (by id). This ordering ensures removals precede
// reorderings, which precede insertions (§4.7's rationale).
func orderBatch(events []Event) []Event {
	rank := func(e Event) int {
		switch e.Kind {
		case SegmentEnd:
			return 0
		case Intersection:
			return 1
		default: // SegmentStart
			return 2
		}
	}
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		switch out[i].Kind {
		case Intersection:
			if out[i].A != out[j].A {
				return out[i].A < out[j].A
			}
			return out[i].B < out[j].B
		default:
			return out[i].Segment < out[j].Segment
		}
	})
	return out
}
