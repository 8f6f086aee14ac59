package preprocess

import (
	"math"
	"testing"

	"github.com/jiangshengdev/sweep-line/sweeperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AdmitsValidSegments(t *testing.T) {
	res := Run([]InputSegment{
		{AX: -0.5, AY: 0, BX: 0.5, BY: 0},
		{AX: 0, AY: -0.5, BX: 0, BY: 0.5},
	})
	require.Empty(t, res.Warnings)
	assert.Equal(t, 2, res.Store.Len())
	require.NotNil(t, res.Mapping[0])
	require.NotNil(t, res.Mapping[1])
}

func TestRun_CanonicalizesEndpoints(t *testing.T) {
	res := Run([]InputSegment{
		{AX: 0.5, AY: 0, BX: -0.5, BY: 0},
	})
	require.Empty(t, res.Warnings)
	seg := res.Store.Get(*res.Mapping[0])
	assert.True(t, seg.A.X < seg.B.X)
}

func TestRun_DropsInvalidCoordinate(t *testing.T) {
	res := Run([]InputSegment{
		{AX: math.NaN(), AY: 0, BX: 0.5, BY: 0},
		{AX: 2, AY: 0, BX: 0.5, BY: 0},
	})
	require.Len(t, res.Warnings, 2)
	assert.Nil(t, res.Mapping[0])
	assert.Nil(t, res.Mapping[1])

	assert.Equal(t, DroppedInvalidCoordinate, res.Warnings[0].Kind)
	assert.Equal(t, AX, res.Warnings[0].Coord)
	assert.Equal(t, sweeperr.NonFinite, res.Warnings[0].Reason)

	assert.Equal(t, DroppedInvalidCoordinate, res.Warnings[1].Kind)
	assert.Equal(t, AX, res.Warnings[1].Coord)
	assert.Equal(t, sweeperr.OutOfRange, res.Warnings[1].Reason)
}

func TestRun_DropsZeroLength(t *testing.T) {
	res := Run([]InputSegment{
		{AX: 0.1, AY: 0.1, BX: 0.1, BY: 0.1},
	})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, DroppedZeroLength, res.Warnings[0].Kind)
	assert.Nil(t, res.Mapping[0])
	assert.Equal(t, 0, res.Store.Len())
}

func TestRun_DropsDuplicate(t *testing.T) {
	res := Run([]InputSegment{
		{AX: -0.5, AY: 0, BX: 0.5, BY: 0},
		{AX: 0.5, AY: 0, BX: -0.5, BY: 0}, // same segment, swapped endpoints
	})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, DroppedDuplicate, res.Warnings[0].Kind)
	assert.Equal(t, 1, res.Warnings[0].InputIndex)
	assert.Equal(t, 0, res.Warnings[0].KeptInputIndex)
	assert.Equal(t, 1, res.Store.Len())
	require.NotNil(t, res.Mapping[0])
	assert.Nil(t, res.Mapping[1])
}

func TestCoord_String(t *testing.T) {
	assert.Equal(t, "ax", AX.String())
	assert.Equal(t, "ay", AY.String())
	assert.Equal(t, "bx", BX.String())
	assert.Equal(t, "by", BY.String())
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: DroppedZeroLength, InputIndex: 3}
	assert.Contains(t, w.String(), "input 3")
}
