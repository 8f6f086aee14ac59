package session

import (
	"testing"

	"github.com/jiangshengdev/sweep-line/fixedpoint"
	"github.com/jiangshengdev/sweep-line/limits"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweep"
	"github.com/jiangshengdev/sweep-line/sweeperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) fixedpoint.PointI64 {
	return fixedpoint.NewPointI64(fixedpoint.Coord(x), fixedpoint.Coord(y))
}

func buildSample(t *testing.T) (*segstore.Store, sweep.Trace) {
	t.Helper()
	st := segstore.NewStore()
	st.Push(segstore.New(pt(-10, 0), pt(10, 0), 0))
	st.Push(segstore.New(pt(0, -10), pt(0, 10), 1))

	status := sweep.NewStatusArray(st)
	eng := sweep.NewEngine(st, status, limits.Default())
	_, trace, err := eng.Run()
	require.NoError(t, err)
	return st, trace
}

func TestWrite_ProducesValidJSON(t *testing.T) {
	st, trace := buildSample(t)
	data, err := Write(st, trace, limits.Default())
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, schemaSession, doc.Schema)
	assert.Equal(t, "1000000000", doc.Fixed.Scale)
	require.Len(t, doc.Segments, 2)
	assert.Equal(t, uint32(0), doc.Segments[0].Id)
	assert.Equal(t, schemaTrace, doc.Trace.Schema)
	assert.NotEmpty(t, doc.Trace.Steps)
}

func TestWrite_Deterministic(t *testing.T) {
	st, trace := buildSample(t)
	a, err := Write(st, trace, limits.Default())
	require.NoError(t, err)
	b, err := Write(st, trace, limits.Default())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWrite_KeyOrder(t *testing.T) {
	st, trace := buildSample(t)
	data, err := Write(st, trace, limits.Default())
	require.NoError(t, err)

	s := string(data)
	iSchema := indexOf(s, `"schema"`)
	iFixed := indexOf(s, `"fixed"`)
	iSegments := indexOf(s, `"segments"`)
	iTrace := indexOf(s, `"trace"`)
	require.True(t, iSchema < iFixed && iFixed < iSegments && iSegments < iTrace)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestWrite_FailFastSessionBytes(t *testing.T) {
	st, trace := buildSample(t)
	lim := limits.Default(limits.WithMaxSessionBytes(10))
	_, err := Write(st, trace, lim)
	require.Error(t, err)
	var limErr *sweeperr.LimitExceeded
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, sweeperr.SessionBytes, limErr.Kind)
}

func TestParseRational_RoundTrip(t *testing.T) {
	wire := RationalWire{Num: "7", Den: "3"}
	r, err := ParseRational(wire)
	require.NoError(t, err)
	assert.Equal(t, "7/3", r.String())
}

func TestParseRational_Malformed(t *testing.T) {
	_, err := ParseRational(RationalWire{Num: "not-a-number", Den: "1"})
	require.Error(t, err)
}
