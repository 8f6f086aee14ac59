package sweep

import (
	"sort"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// StatusArray is the sorted-array baseline status structure, grounded on
// github.com/mikenye/geom2d/linesegment/sweepline_statusstructure.go's
// sItem / updateStatusStructure sorted-slice design. It exists for
// differential testing against StatusTreap (§4.6: "both must produce
// bit-identical snapshot_order under identical input").
type StatusArray struct {
	cmp     *Comparator
	store   *segstore.Store
	ordered []segstore.SegmentId
}

// NewStatusArray returns an empty StatusArray reading segments from store.
func NewStatusArray(store *segstore.Store) *StatusArray {
	return &StatusArray{cmp: NewComparator(store), store: store}
}

func (s *StatusArray) SetSweepX(x rational.Rational) {
	s.cmp.SetSweepX(x)
}

func (s *StatusArray) indexOf(id segstore.SegmentId) (int, bool) {
	idx := sort.Search(len(s.ordered), func(i int) bool {
		return s.cmp.Cmp(s.ordered[i], id) >= 0
	})
	if idx < len(s.ordered) && s.ordered[idx] == id {
		return idx, true
	}
	return idx, false
}

func (s *StatusArray) Insert(id segstore.SegmentId) error {
	if s.store.Get(id).IsVertical() {
		return &sweeperr.SweepStatusError{Kind: sweeperr.VerticalSegmentNotAllowed, SegmentId: uint32(id)}
	}
	idx, found := s.indexOf(id)
	if found {
		return &sweeperr.SweepStatusError{Kind: sweeperr.DuplicateSegmentId, SegmentId: uint32(id)}
	}
	s.ordered = append(s.ordered, 0)
	copy(s.ordered[idx+1:], s.ordered[idx:])
	s.ordered[idx] = id
	return nil
}

func (s *StatusArray) Remove(id segstore.SegmentId) error {
	idx, found := s.indexOf(id)
	if !found {
		return &sweeperr.SweepStatusError{Kind: sweeperr.SegmentNotFound, SegmentId: uint32(id)}
	}
	s.ordered = append(s.ordered[:idx], s.ordered[idx+1:]...)
	return nil
}

func (s *StatusArray) Pred(id segstore.SegmentId) (segstore.SegmentId, bool) {
	idx, found := s.indexOf(id)
	if !found || idx == 0 {
		return 0, false
	}
	return s.ordered[idx-1], true
}

func (s *StatusArray) Succ(id segstore.SegmentId) (segstore.SegmentId, bool) {
	idx, found := s.indexOf(id)
	if !found || idx == len(s.ordered)-1 {
		return 0, false
	}
	return s.ordered[idx+1], true
}

func (s *StatusArray) yAt(id segstore.SegmentId) rational.Rational {
	y, err := YAtX(s.store.Get(id), s.cmp.SweepX())
	if err != nil {
		panic(err)
	}
	return y
}

func (s *StatusArray) LowerBoundByY(yMin rational.Rational) (segstore.SegmentId, bool) {
	idx := sort.Search(len(s.ordered), func(i int) bool {
		return s.yAt(s.ordered[i]).Ge(yMin)
	})
	if idx >= len(s.ordered) {
		return 0, false
	}
	return s.ordered[idx], true
}

func (s *StatusArray) RangeByY(yMin, yMax rational.Rational) []segstore.SegmentId {
	var out []segstore.SegmentId
	for _, id := range s.ordered {
		y := s.yAt(id)
		if y.Ge(yMin) && y.Le(yMax) {
			out = append(out, id)
		}
	}
	return out
}

func (s *StatusArray) SnapshotOrder() []segstore.SegmentId {
	out := make([]segstore.SegmentId, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *StatusArray) ValidateInvariants() bool {
	for i := 1; i < len(s.ordered); i++ {
		if s.cmp.Cmp(s.ordered[i-1], s.ordered[i]) >= 0 {
			return false
		}
	}
	return true
}
