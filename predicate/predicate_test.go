package predicate

import (
	"testing"

	"github.com/jiangshengdev/sweep-line/fixedpoint"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) fixedpoint.PointI64 {
	return fixedpoint.NewPointI64(fixedpoint.Coord(x), fixedpoint.Coord(y))
}

func TestOrient(t *testing.T) {
	tests := map[string]struct {
		a, b, c fixedpoint.PointI64
		want    Orientation
	}{
		"collinear horizontal": {
			a: pt(0, 0), b: pt(10, 0), c: pt(20, 0),
			want: Collinear,
		},
		"counter-clockwise": {
			a: pt(0, 0), b: pt(10, 0), c: pt(5, 5),
			want: CounterClockwise,
		},
		"clockwise": {
			a: pt(0, 0), b: pt(10, 0), c: pt(5, -5),
			want: Clockwise,
		},
		"large magnitude near scale bound": {
			a: pt(-1_000_000_000, -1_000_000_000),
			b: pt(1_000_000_000, 1_000_000_000),
			c: pt(1_000_000_000, -1_000_000_000),
			want: Clockwise,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Orient(tc.a, tc.b, tc.c))
		})
	}
}

func TestOrient_Antisymmetric(t *testing.T) {
	a, b, c := pt(0, 0), pt(4, 0), pt(1, 3)
	o1 := Orient(a, b, c)
	o2 := Orient(b, a, c)
	assert.Equal(t, -int8(o1), int8(o2))
}

func TestOnSegment(t *testing.T) {
	a, b := pt(0, 0), pt(10, 10)

	assert.True(t, OnSegment(a, b, pt(5, 5)))
	assert.True(t, OnSegment(a, b, a))
	assert.True(t, OnSegment(a, b, b))
	assert.False(t, OnSegment(a, b, pt(11, 11))) // collinear, but outside box
	assert.False(t, OnSegment(a, b, pt(5, 6)))   // not collinear
}

func TestOnSegment_VerticalSegment(t *testing.T) {
	a, b := pt(3, 0), pt(3, 10)
	assert.True(t, OnSegment(a, b, pt(3, 7)))
	assert.False(t, OnSegment(a, b, pt(3, 11)))
	assert.False(t, OnSegment(a, b, pt(4, 7)))
}

func TestOrientation_String(t *testing.T) {
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Equal(t, "CounterClockwise", CounterClockwise.String())
}
