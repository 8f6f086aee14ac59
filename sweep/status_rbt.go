package sweep

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// StatusRBT is a red-black-tree-backed status structure, grounded on
// github.com/mikenye/geom2d/linesegment/sweepline_statusstructure_rbt.go's
// statusStructureRBT: a gods redblacktree.Tree keyed by a comparator closure
// over the sweep engine's current position, used there for Floor/Ceiling
// neighbor queries and here for the same Pred/Succ/LowerBoundByY shape. It
// is a third differential-testing partner alongside StatusArray and
// StatusTreap (§4.6): all three must produce bit-identical SnapshotOrder
// under identical input.
type StatusRBT struct {
	cmp   *Comparator
	store *segstore.Store
	tree  *rbt.Tree
	size  int
}

// NewStatusRBT returns an empty StatusRBT reading segments from store.
func NewStatusRBT(store *segstore.Store) *StatusRBT {
	s := &StatusRBT{cmp: NewComparator(store), store: store}
	s.tree = rbt.NewWith(func(a, b interface{}) int {
		return s.cmp.Cmp(a.(segstore.SegmentId), b.(segstore.SegmentId))
	})
	return s
}

func (s *StatusRBT) SetSweepX(x rational.Rational) {
	s.cmp.SetSweepX(x)
}

func (s *StatusRBT) Insert(id segstore.SegmentId) error {
	if s.store.Get(id).IsVertical() {
		return &sweeperr.SweepStatusError{Kind: sweeperr.VerticalSegmentNotAllowed, SegmentId: uint32(id)}
	}
	if _, found := s.tree.Get(id); found {
		return &sweeperr.SweepStatusError{Kind: sweeperr.DuplicateSegmentId, SegmentId: uint32(id)}
	}
	s.tree.Put(id, nil)
	s.size++
	return nil
}

func (s *StatusRBT) Remove(id segstore.SegmentId) error {
	if _, found := s.tree.Get(id); !found {
		return &sweeperr.SweepStatusError{Kind: sweeperr.SegmentNotFound, SegmentId: uint32(id)}
	}
	s.tree.Remove(id)
	s.size--
	return nil
}

func (s *StatusRBT) Pred(id segstore.SegmentId) (segstore.SegmentId, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return 0, false
	}
	iter := s.tree.IteratorAt(node)
	if !iter.Prev() {
		return 0, false
	}
	return iter.Key().(segstore.SegmentId), true
}

func (s *StatusRBT) Succ(id segstore.SegmentId) (segstore.SegmentId, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return 0, false
	}
	iter := s.tree.IteratorAt(node)
	if !iter.Next() {
		return 0, false
	}
	return iter.Key().(segstore.SegmentId), true
}

func (s *StatusRBT) yAt(id segstore.SegmentId) rational.Rational {
	y, err := YAtX(s.store.Get(id), s.cmp.SweepX())
	if err != nil {
		panic(err)
	}
	return y
}

func (s *StatusRBT) LowerBoundByY(yMin rational.Rational) (segstore.SegmentId, bool) {
	iter := s.tree.Iterator()
	for iter.Next() {
		id := iter.Key().(segstore.SegmentId)
		if s.yAt(id).Ge(yMin) {
			return id, true
		}
	}
	return 0, false
}

func (s *StatusRBT) RangeByY(yMin, yMax rational.Rational) []segstore.SegmentId {
	var out []segstore.SegmentId
	iter := s.tree.Iterator()
	for iter.Next() {
		id := iter.Key().(segstore.SegmentId)
		y := s.yAt(id)
		if y.Ge(yMin) && y.Le(yMax) {
			out = append(out, id)
		}
	}
	return out
}

func (s *StatusRBT) SnapshotOrder() []segstore.SegmentId {
	out := make([]segstore.SegmentId, 0, s.size)
	iter := s.tree.Iterator()
	for iter.Next() {
		out = append(out, iter.Key().(segstore.SegmentId))
	}
	return out
}

func (s *StatusRBT) ValidateInvariants() bool {
	order := s.SnapshotOrder()
	for i := 1; i < len(order); i++ {
		if s.cmp.Cmp(order[i-1], order[i]) >= 0 {
			return false
		}
	}
	return true
}
