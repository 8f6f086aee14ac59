package sweep

import (
	"testing"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAtX(t *testing.T) {
	seg := segstore.New(pt(0, 0), pt(10, 10), 0)

	y, err := YAtX(seg, rational.FromInt(5))
	require.NoError(t, err)
	assert.True(t, y.Eq(rational.FromInt(5)))

	y, err = YAtX(seg, rational.New(rational.NewBig(1), rational.NewBig(2)))
	require.NoError(t, err)
	assert.True(t, y.Eq(rational.New(rational.NewBig(1), rational.NewBig(2))))
}

func TestYAtX_VerticalRejected(t *testing.T) {
	seg := segstore.New(pt(0, 0), pt(0, 10), 0)
	_, err := YAtX(seg, rational.FromInt(0))
	require.Error(t, err)
}

func TestSlope(t *testing.T) {
	seg := segstore.New(pt(0, 0), pt(10, 20), 0)
	assert.True(t, Slope(seg).Eq(rational.FromInt(2)))
}

func TestComparator_Cmp(t *testing.T) {
	st := segstore.NewStore()
	flat := st.Push(segstore.New(pt(0, 0), pt(10, 0), 0))
	rising := st.Push(segstore.New(pt(0, -5), pt(10, 5), 1))

	cmp := NewComparator(st)
	cmp.SetSweepX(rational.FromInt(0))
	assert.True(t, cmp.Less(rising, flat))

	cmp.SetSweepX(rational.FromInt(10))
	assert.True(t, cmp.Less(flat, rising))

	assert.Equal(t, 0, cmp.Cmp(flat, flat))
}

func TestComparator_SlopeTiebreak(t *testing.T) {
	st := segstore.NewStore()
	shallow := st.Push(segstore.New(pt(0, 0), pt(10, 1), 0))
	steep := st.Push(segstore.New(pt(0, 0), pt(10, 5), 1))

	cmp := NewComparator(st)
	cmp.SetSweepX(rational.FromInt(0))
	assert.True(t, cmp.Less(shallow, steep))
}
