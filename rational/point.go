package rational

import "fmt"

// PointRat is a point with exact rational coordinates, used for every
// coordinate that can arise as a segment-intersection result (proper
// intersections generally do not land on the integer grid).
//
// Total order: lexicographic by X, then Y — identical in spirit to the
// ordering fixedpoint.PointI64 defines over the integer grid.
type PointRat struct {
	X Rational
	Y Rational
}

// NewPointRat returns the point (x, y).
func NewPointRat(x, y Rational) PointRat {
	return PointRat{X: x, Y: y}
}

// PointRatFromInt lifts an integer-coordinate point into PointRat.
func PointRatFromInt(x, y int64) PointRat {
	return PointRat{X: FromInt(x), Y: FromInt(y)}
}

// Eq reports whether p and other denote the same point.
func (p PointRat) Eq(other PointRat) bool {
	return p.X.Eq(other.X) && p.Y.Eq(other.Y)
}

// Cmp orders p and other lexicographically by X, then Y.
func (p PointRat) Cmp(other PointRat) int {
	if c := p.X.Cmp(other.X); c != 0 {
		return c
	}
	return p.Y.Cmp(other.Y)
}

// Lt reports whether p sorts strictly before other.
func (p PointRat) Lt(other PointRat) bool { return p.Cmp(other) < 0 }

// Le reports whether p sorts at or before other.
func (p PointRat) Le(other PointRat) bool { return p.Cmp(other) <= 0 }

// String returns "(x, y)".
func (p PointRat) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}
