// Package sweep implements the Bentley-Ottmann style engine: the ordered
// event queue, the pluggable sweep-status structure, and the batched
// per-point processing loop that produces intersection groups and a
// replayable trace. It is grounded on
// github.com/mikenye/geom2d/linesegment/sweepline.go's
// FindIntersectionsFast / handleEventPoint / findNewEvent structure,
// generalized from that function's float64, single-event-at-a-time
// handling to this package's exact-rational, batched-per-point design.
package sweep

import (
	"fmt"
	"sort"

	"github.com/jiangshengdev/sweep-line/limits"
	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// Engine runs the sweep over a fixed segstore.Store, driven by a pluggable
// Status implementation (StatusArray, StatusTreap, or StatusRBT).
type Engine struct {
	store  *segstore.Store
	status Status
	queue  *EventQueue
	lim    limits.Limits

	scheduled      map[string]bool
	collinearNotes []string

	hasPendingX      bool
	pendingX         rational.Rational
	pendingVerticals map[segstore.SegmentId]bool

	trace              Trace
	groups             []GroupRecord
	activeEntriesTotal int64
}

// NewEngine returns an Engine over store, using status as its sweep-status
// structure and lim as its fail-fast ceilings.
func NewEngine(store *segstore.Store, status Status, lim limits.Limits) *Engine {
	e := &Engine{
		store:            store,
		status:           status,
		queue:            NewEventQueue(),
		lim:              lim,
		scheduled:        map[string]bool{},
		pendingVerticals: map[segstore.SegmentId]bool{},
	}
	e.seed()
	return e
}

// seed schedules a SegmentStart at every segment's A endpoint and a
// SegmentEnd at its B endpoint, for every segment in the store — vertical
// segments included; §4.8 step 4 classifies verticals out of U/L at batch
// time, but their endpoint events still need to reach the queue so step 3's
// endpoint-coincidence collection sees them.
func (e *Engine) seed() {
	for _, id := range e.store.Ids() {
		seg := e.store.Get(id)
		e.queue.Schedule(seg.A.ToPointRat(), NewSegmentStart(id))
		e.queue.Schedule(seg.B.ToPointRat(), NewSegmentEnd(id))
	}
}

// Run drains the event queue, returning the finalized group records and
// replayable trace, or the first fatal error encountered.
func (e *Engine) Run() ([]GroupRecord, Trace, error) {
	for !e.queue.Empty() {
		point, events := e.queue.PopNextBatch()

		if e.hasPendingX && point.X.Cmp(e.pendingX) != 0 && len(e.pendingVerticals) > 0 {
			if err := e.flushVerticals(); err != nil {
				return nil, e.trace, err
			}
		}

		e.status.SetSweepX(point.X)
		if err := e.processBatch(point, events); err != nil {
			return nil, e.trace, err
		}
	}

	if len(e.pendingVerticals) > 0 {
		if err := e.flushVerticals(); err != nil {
			return nil, e.trace, err
		}
	}

	return e.groups, e.trace, nil
}

func (e *Engine) processBatch(point rational.PointRat, events []Event) error {
	builders := map[string]*groupBuilder{}
	builderFor := func(p rational.PointRat) *groupBuilder {
		key := p.String()
		b, ok := builders[key]
		if !ok {
			b = newGroupBuilder(p)
			builders[key] = b
		}
		return b
	}

	// Step 3: endpoint coincidence.
	var endpointSet []segstore.SegmentId
	for _, ev := range events {
		if ev.Kind == SegmentStart || ev.Kind == SegmentEnd {
			endpointSet = append(endpointSet, ev.Segment)
		}
	}
	if len(endpointSet) >= 2 {
		b := builderFor(point)
		for _, id := range endpointSet {
			b.addEndpoint(id)
		}
	}
	inE := make(map[segstore.SegmentId]bool, len(endpointSet))
	for _, id := range endpointSet {
		inE[id] = true
	}

	// Step 4: classify events into U/V_new/L/V_end/P.
	uSet, vNewSet, lSet := map[segstore.SegmentId]bool{}, map[segstore.SegmentId]bool{}, map[segstore.SegmentId]bool{}
	var pPairs [][2]segstore.SegmentId
	for _, ev := range events {
		switch ev.Kind {
		case SegmentStart:
			if e.store.Get(ev.Segment).IsVertical() {
				vNewSet[ev.Segment] = true
			} else {
				uSet[ev.Segment] = true
			}
		case SegmentEnd:
			if !e.store.Get(ev.Segment).IsVertical() {
				lSet[ev.Segment] = true
			}
			// vertical ends: no action here, handled by the flush.
		case Intersection:
			pPairs = append(pPairs, [2]segstore.SegmentId{ev.A, ev.B})
		}
	}
	for v := range vNewSet {
		e.pendingVerticals[v] = true
		e.hasPendingX = true
		e.pendingX = point.X
	}

	u := sortedSet(uSet)
	l := sortedSet(lSet)

	// Step 5: endpoint-on-interior hits for U ∪ L against active segments
	// crossing this point's Y.
	if len(u) > 0 || len(l) > 0 {
		hits := e.status.RangeByY(point.Y, point.Y)
		for _, endpointId := range append(append([]segstore.SegmentId{}, u...), l...) {
			for _, s := range hits {
				if s == endpointId || inE[s] {
					continue
				}
				res := segstore.Intersect(e.store.Get(endpointId), e.store.Get(s))
				if res.Kind == segstore.Point && res.PointKind == segstore.EndpointTouch && res.At.Eq(point) {
					b := builderFor(point)
					b.addEndpoint(endpointId)
					b.addInterior(s)
				}
			}
		}
	}

	// Step 6: vertical endpoint touches for ending segments.
	for _, s := range l {
		sSeg := e.store.Get(s)
		for v := range e.pendingVerticals {
			vSeg := e.store.Get(v)
			if !rational.FromInt(int64(vSeg.A.X)).Eq(point.X) {
				continue
			}
			res := segstore.Intersect(vSeg, sSeg)
			if res.Kind != segstore.Point || !res.At.Eq(point) {
				continue
			}
			if vSeg.A.ToPointRat().Eq(point) || vSeg.B.ToPointRat().Eq(point) {
				continue
			}
			b := builderFor(point)
			b.addEndpoint(s)
			b.addInterior(v)
		}
	}

	// Step 7: reorder set C.
	cSet := map[segstore.SegmentId]bool{}
	for _, pair := range pPairs {
		a, bId := pair[0], pair[1]
		res := segstore.Intersect(e.store.Get(a), e.store.Get(bId))
		if res.Kind == segstore.Point && res.PointKind == segstore.Proper {
			cSet[a] = true
			cSet[bId] = true
			b := builderFor(point)
			b.addInterior(a)
			b.addInterior(bId)
		}
	}
	c := sortedSet(cSet)

	// Step 8: status mutations.
	toRemove := unionSorted(l, c)
	toInsert := unionSorted(u, c)
	for _, id := range toRemove {
		if err := e.status.Remove(id); err != nil {
			return err
		}
	}
	for _, id := range toInsert {
		if err := e.status.Insert(id); err != nil {
			return err
		}
	}

	// Step 9: schedule future intersections.
	if len(toInsert) == 0 {
		if succ, found := e.status.LowerBoundByY(point.Y); found {
			if pred, found := e.status.Pred(succ); found {
				e.schedulePair(point, pred, succ)
			}
		}
	} else {
		for _, id := range toInsert {
			if pred, found := e.status.Pred(id); found {
				e.schedulePair(point, pred, id)
			}
			if succ, found := e.status.Succ(id); found {
				e.schedulePair(point, id, succ)
			}
		}
	}

	// Step 10: emit step & group records.
	var notes []string
	notes = append(notes, fmt.Sprintf("U=%d L=%d C=%d V_new=%d", len(u), len(l), len(c), len(vNewSet)))
	notes = append(notes, e.collinearNotes...)
	e.collinearNotes = nil

	var emitted []GroupRecord
	for _, key := range sortedBuilderKeys(builders) {
		rec, ok := builders[key].finalize()
		if ok {
			emitted = append(emitted, rec)
		}
	}

	active := e.status.SnapshotOrder()
	step := TraceStep{
		Kind:          PointBatch,
		SweepX:        point.X,
		Point:         point,
		HasPoint:      true,
		Events:        describeEvents(events),
		Active:        active,
		Intersections: emitted,
		Notes:         notes,
	}
	return e.commitStep(step, emitted)
}

// flushVerticals resolves every deferred vertical segment at the pending x
// column against the non-vertical active set, per §4.10.
func (e *Engine) flushVerticals() error {
	verticals := sortedSet(e.pendingVerticals)
	builders := map[string]*groupBuilder{}
	builderFor := func(p rational.PointRat) *groupBuilder {
		key := p.String()
		b, ok := builders[key]
		if !ok {
			b = newGroupBuilder(p)
			builders[key] = b
		}
		return b
	}

	var notes []string
	for _, v := range verticals {
		vSeg := e.store.Get(v)
		yMin, yMax := vSeg.YRange()
		hits := e.status.RangeByY(rational.FromInt(int64(yMin)), rational.FromInt(int64(yMax)))
		for _, s := range hits {
			sSeg := e.store.Get(s)
			res := segstore.Intersect(vSeg, sSeg)
			if res.Kind == segstore.CollinearOverlap {
				notes = append(notes, fmt.Sprintf("collinear overlap: segments %d %d", v, s))
				continue
			}
			if res.Kind != segstore.Point {
				continue
			}
			vEndpoint := res.At.Eq(vSeg.A.ToPointRat()) || res.At.Eq(vSeg.B.ToPointRat())
			sEndpoint := res.At.Eq(sSeg.A.ToPointRat()) || res.At.Eq(sSeg.B.ToPointRat())
			if vEndpoint && sEndpoint {
				continue // already emitted at the event point in step 3.
			}
			b := builderFor(res.At)
			if vEndpoint {
				b.addEndpoint(v)
			} else {
				b.addInterior(v)
			}
			if sEndpoint {
				b.addEndpoint(s)
			} else {
				b.addInterior(s)
			}
		}
	}

	var emitted []GroupRecord
	for _, key := range sortedBuilderKeys(builders) {
		rec, ok := builders[key].finalize()
		if ok {
			emitted = append(emitted, rec)
		}
	}

	events := make([]string, 0, len(verticals))
	for _, v := range verticals {
		events = append(events, fmt.Sprintf("vertical flush: %s", e.store.Get(v)))
	}

	step := TraceStep{
		Kind:          VerticalFlush,
		SweepX:        e.pendingX,
		Active:        e.status.SnapshotOrder(),
		Events:        events,
		Intersections: emitted,
		Notes:         notes,
	}

	e.pendingVerticals = map[segstore.SegmentId]bool{}
	e.hasPendingX = false

	return e.commitStep(step, emitted)
}

// commitStep appends step to the trace and emitted to the running group
// list, checking the three fail-fast ceilings §4.8 step 10 requires.
func (e *Engine) commitStep(step TraceStep, emitted []GroupRecord) error {
	e.trace.Steps = append(e.trace.Steps, step)
	if int64(len(e.trace.Steps)) > e.lim.MaxTraceSteps {
		return &sweeperr.LimitExceeded{Kind: sweeperr.TraceSteps, Limit: e.lim.MaxTraceSteps, Actual: int64(len(e.trace.Steps))}
	}

	e.activeEntriesTotal += int64(len(step.Active))
	if e.activeEntriesTotal > e.lim.MaxTraceActiveEntriesTotal {
		return &sweeperr.LimitExceeded{Kind: sweeperr.ActiveEntriesTotal, Limit: e.lim.MaxTraceActiveEntriesTotal, Actual: e.activeEntriesTotal}
	}

	e.groups = append(e.groups, emitted...)
	if int64(len(e.groups)) > e.lim.MaxIntersections {
		return &sweeperr.LimitExceeded{Kind: sweeperr.Intersections, Limit: e.lim.MaxIntersections, Actual: int64(len(e.groups))}
	}
	return nil
}

// schedulePair applies the §4.9 scheduling rule for the pair (a, b) at
// current point c.
func (e *Engine) schedulePair(c rational.PointRat, a, b segstore.SegmentId) {
	if a == b {
		return
	}
	res := segstore.Intersect(e.store.Get(a), e.store.Get(b))
	if res.Kind == segstore.CollinearOverlap {
		e.collinearNotes = append(e.collinearNotes, fmt.Sprintf("collinear overlap: segments %d %d", a, b))
		return
	}
	if res.Kind != segstore.Point {
		return // None: no intersection at all.
	}
	if res.At.Le(c) {
		return // past or current.
	}
	if res.PointKind == segstore.EndpointTouch {
		return // endpoint touches are produced by batch logic, never here.
	}
	key := tripleKey(res.At, a, b)
	if e.scheduled[key] {
		return
	}
	e.scheduled[key] = true
	e.queue.Schedule(res.At, NewIntersectionEvent(a, b))
}

func tripleKey(p rational.PointRat, a, b segstore.SegmentId) string {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("%s|%d|%d", p.String(), lo, hi)
}

func sortedSet(set map[segstore.SegmentId]bool) []segstore.SegmentId {
	out := make([]segstore.SegmentId, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func unionSorted(a, b []segstore.SegmentId) []segstore.SegmentId {
	set := map[segstore.SegmentId]bool{}
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		set[id] = true
	}
	return sortedSet(set)
}

func sortedBuilderKeys(builders map[string]*groupBuilder) []string {
	keys := make([]string, 0, len(builders))
	for k := range builders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describeEvents(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		switch ev.Kind {
		case Intersection:
			out = append(out, fmt.Sprintf("Intersection(%d, %d)", ev.A, ev.B))
		default:
			out = append(out, fmt.Sprintf("%s(%d)", ev.Kind, ev.Segment))
		}
	}
	return out
}
