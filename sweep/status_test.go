package sweep

import (
	"testing"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStatusTrio returns all three Status backends so differential tests can
// check every pair agrees (§4.6).
func newStatusTrio(store *segstore.Store) []Status {
	return []Status{NewStatusArray(store), NewStatusTreap(store), NewStatusRBT(store)}
}

func TestStatus_InsertRemoveParity(t *testing.T) {
	st := segstore.NewStore()
	a := st.Push(segstore.New(pt(0, 0), pt(10, 0), 0))
	b := st.Push(segstore.New(pt(0, -5), pt(10, 5), 1))
	c := st.Push(segstore.New(pt(0, 5), pt(10, -5), 2))

	backends := newStatusTrio(st)
	array, treap, rbtree := backends[0], backends[1], backends[2]
	for _, s := range backends {
		s.SetSweepX(rational.FromInt(0))
		require.NoError(t, s.Insert(a))
		require.NoError(t, s.Insert(b))
		require.NoError(t, s.Insert(c))
	}

	assert.Equal(t, array.SnapshotOrder(), treap.SnapshotOrder())
	assert.Equal(t, array.SnapshotOrder(), rbtree.SnapshotOrder())
	assert.True(t, array.ValidateInvariants())
	assert.True(t, treap.ValidateInvariants())
	assert.True(t, rbtree.ValidateInvariants())

	for _, s := range backends {
		s.SetSweepX(rational.FromInt(10))
	}
	assert.Equal(t, array.SnapshotOrder(), treap.SnapshotOrder())
	assert.Equal(t, array.SnapshotOrder(), rbtree.SnapshotOrder())

	for _, s := range backends {
		require.NoError(t, s.Remove(b))
	}
	assert.Equal(t, array.SnapshotOrder(), treap.SnapshotOrder())
	assert.Equal(t, array.SnapshotOrder(), rbtree.SnapshotOrder())
}

func TestStatus_PredSucc(t *testing.T) {
	st := segstore.NewStore()
	low := st.Push(segstore.New(pt(0, -5), pt(10, -5), 0))
	mid := st.Push(segstore.New(pt(0, 0), pt(10, 0), 1))
	high := st.Push(segstore.New(pt(0, 5), pt(10, 5), 2))

	for _, s := range newStatusTrio(st) {
		s.SetSweepX(rational.FromInt(0))
		require.NoError(t, s.Insert(low))
		require.NoError(t, s.Insert(mid))
		require.NoError(t, s.Insert(high))

		pred, found := s.Pred(mid)
		require.True(t, found)
		assert.Equal(t, low, pred)

		succ, found := s.Succ(mid)
		require.True(t, found)
		assert.Equal(t, high, succ)

		_, found = s.Pred(low)
		assert.False(t, found)
		_, found = s.Succ(high)
		assert.False(t, found)
	}
}

func TestStatus_RangeAndLowerBound(t *testing.T) {
	st := segstore.NewStore()
	low := st.Push(segstore.New(pt(0, -5), pt(10, -5), 0))
	mid := st.Push(segstore.New(pt(0, 0), pt(10, 0), 1))
	high := st.Push(segstore.New(pt(0, 5), pt(10, 5), 2))

	for _, s := range newStatusTrio(st) {
		s.SetSweepX(rational.FromInt(0))
		require.NoError(t, s.Insert(low))
		require.NoError(t, s.Insert(mid))
		require.NoError(t, s.Insert(high))

		hits := s.RangeByY(rational.FromInt(-5), rational.FromInt(0))
		assert.Equal(t, []segstore.SegmentId{low, mid}, hits)

		lb, found := s.LowerBoundByY(rational.FromInt(-4))
		require.True(t, found)
		assert.Equal(t, mid, lb)
	}
}

func TestStatus_InsertErrors(t *testing.T) {
	st := segstore.NewStore()
	vertical := st.Push(segstore.New(pt(0, 0), pt(0, 10), 0))
	flat := st.Push(segstore.New(pt(0, 0), pt(10, 0), 1))

	for _, s := range newStatusTrio(st) {
		s.SetSweepX(rational.FromInt(0))
		err := s.Insert(vertical)
		require.Error(t, err)
		var statusErr *sweeperr.SweepStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, sweeperr.VerticalSegmentNotAllowed, statusErr.Kind)

		require.NoError(t, s.Insert(flat))
		err = s.Insert(flat)
		require.Error(t, err)
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, sweeperr.DuplicateSegmentId, statusErr.Kind)

		require.NoError(t, s.Remove(flat))
		err = s.Remove(flat)
		require.Error(t, err)
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, sweeperr.SegmentNotFound, statusErr.Kind)
	}
}
