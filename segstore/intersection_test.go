package segstore

import (
	"testing"

	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/stretchr/testify/assert"
)

const scale = 1_000_000_000

func TestIntersect_BasicCross(t *testing.T) {
	a := New(pt(-scale, 0), pt(scale, 0), 0)
	b := New(pt(0, -scale), pt(0, scale), 1)

	res := Intersect(a, b)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, Proper, res.PointKind)
	assert.True(t, res.At.Eq(rational.PointRatFromInt(0, 0)))
}

func TestIntersect_RationalIntersection(t *testing.T) {
	a := New(pt(-scale, 0), pt(scale, 0), 0)
	b := New(pt(0, scale/2), pt(scale, -scale), 1)

	res := Intersect(a, b)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, Proper, res.PointKind)

	want := rational.NewPointRat(rational.New(rational.NewBig(scale), rational.NewBig(3)), rational.FromInt(0))
	assert.True(t, res.At.Eq(want), "got %s want %s", res.At, want)
}

func TestIntersect_EndpointTouch(t *testing.T) {
	a := New(pt(-scale/2, 0), pt(0, 0), 0)
	b := New(pt(0, 0), pt(scale/2, scale/2), 1)

	res := Intersect(a, b)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, EndpointTouch, res.PointKind)
	assert.True(t, res.At.Eq(rational.PointRatFromInt(0, 0)))
}

func TestIntersect_SharedEndEndpointTouch(t *testing.T) {
	a := New(pt(0, 0), pt(10, 0), 0)
	b := New(pt(0, 10), pt(10, 0), 1)

	res := Intersect(a, b)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, EndpointTouch, res.PointKind)
	assert.True(t, res.At.Eq(rational.PointRatFromInt(10, 0)))
}

func TestIntersect_EndpointOnVerticalInterior(t *testing.T) {
	v := New(pt(0, -10), pt(0, 10), 0)
	e := New(pt(-10, 3), pt(0, 3), 1)

	res := Intersect(v, e)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, EndpointTouch, res.PointKind)
	assert.True(t, res.At.Eq(rational.PointRatFromInt(0, 3)))
}

func TestIntersect_CollinearOverlap(t *testing.T) {
	a := New(pt(0, 0), pt(10, 0), 0)
	b := New(pt(5, 0), pt(15, 0), 1)

	res := Intersect(a, b)
	assert.Equal(t, CollinearOverlap, res.Kind)
}

func TestIntersect_CollinearSinglePoint(t *testing.T) {
	a := New(pt(0, 0), pt(10, 0), 0)
	b := New(pt(10, 0), pt(20, 0), 1)

	res := Intersect(a, b)
	assert.Equal(t, Point, res.Kind)
	assert.Equal(t, EndpointTouch, res.PointKind)
	assert.True(t, res.At.Eq(rational.PointRatFromInt(10, 0)))
}

func TestIntersect_CollinearDisjoint(t *testing.T) {
	a := New(pt(0, 0), pt(10, 0), 0)
	b := New(pt(20, 0), pt(30, 0), 1)

	res := Intersect(a, b)
	assert.Equal(t, None, res.Kind)
}

func TestIntersect_CollinearVertical(t *testing.T) {
	a := New(pt(5, 0), pt(5, 10), 0)
	b := New(pt(5, 5), pt(5, 15), 1)

	res := Intersect(a, b)
	assert.Equal(t, CollinearOverlap, res.Kind)
}

func TestIntersect_ParallelNoTouch(t *testing.T) {
	a := New(pt(0, 0), pt(10, 0), 0)
	b := New(pt(0, 5), pt(10, 5), 1)

	res := Intersect(a, b)
	assert.Equal(t, None, res.Kind)
}

func TestBruteForceIntersections(t *testing.T) {
	st := NewStore()
	st.Push(New(pt(-scale, 0), pt(scale, 0), 0))
	st.Push(New(pt(0, -scale), pt(0, scale), 1))
	st.Push(New(pt(-scale, scale), pt(scale, scale), 2)) // disjoint from both

	pairs := BruteForceIntersections(st)
	assert.Len(t, pairs, 1)
	assert.Equal(t, SegmentId(0), pairs[0].A)
	assert.Equal(t, SegmentId(1), pairs[0].B)
}
