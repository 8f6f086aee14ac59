package sweep

import (
	"sort"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
)

// GroupRecord is the aggregate intersection record at a single point,
// categorizing each incident segment as touching at an endpoint or passing
// through the interior. Invariant: EndpointSegments and InteriorSegments
// are disjoint; each is sorted ascending and deduplicated; their combined
// size is at least 2 (otherwise the record is not emitted).
type GroupRecord struct {
	Point            rational.PointRat
	EndpointSegments []segstore.SegmentId
	InteriorSegments []segstore.SegmentId
}

// groupBuilder accumulates endpoint/interior membership for the group at a
// single point before it is finalized into a GroupRecord.
type groupBuilder struct {
	point    rational.PointRat
	endpoint map[segstore.SegmentId]bool
	interior map[segstore.SegmentId]bool
}

func newGroupBuilder(p rational.PointRat) *groupBuilder {
	return &groupBuilder{point: p, endpoint: map[segstore.SegmentId]bool{}, interior: map[segstore.SegmentId]bool{}}
}

// addEndpoint marks id as touching this group at an endpoint. A segment
// already marked interior is promoted to endpoint — "a segment that
// appears with both roles at the same point is classified as endpoint"
// (§3).
func (g *groupBuilder) addEndpoint(id segstore.SegmentId) {
	g.endpoint[id] = true
	delete(g.interior, id)
}

// addInterior marks id as passing through this group's interior, unless it
// is already marked endpoint.
func (g *groupBuilder) addInterior(id segstore.SegmentId) {
	if g.endpoint[id] {
		return
	}
	g.interior[id] = true
}

// finalize returns the GroupRecord this builder describes, and whether it
// meets the emission threshold |endpoint| + |interior| >= 2.
func (g *groupBuilder) finalize() (GroupRecord, bool) {
	if len(g.endpoint)+len(g.interior) < 2 {
		return GroupRecord{}, false
	}
	return GroupRecord{
		Point:            g.point,
		EndpointSegments: sortedIds(g.endpoint),
		InteriorSegments: sortedIds(g.interior),
	}, true
}

func sortedIds(set map[segstore.SegmentId]bool) []segstore.SegmentId {
	out := make([]segstore.SegmentId, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
