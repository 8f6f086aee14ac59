// Package predicate implements the exact geometric predicates the sweep
// kernel reasons with: orientation and on-segment containment. It is
// grounded on the role github.com/mikenye/geom2d/point/orientation.go plays
// in the teacher library, generalized from that package's epsilon-tolerant
// float64 cross product to the integer grid defined in fixedpoint.
package predicate

import (
	"github.com/jiangshengdev/sweep-line/fixedpoint"
	"github.com/jiangshengdev/sweep-line/rational"
)

// Orientation classifies the turn from a to b to c.
type Orientation int8

const (
	// Collinear means a, b, c lie on one line.
	Collinear Orientation = 0
	// Clockwise means c lies to the right of the directed line a->b.
	Clockwise Orientation = -1
	// CounterClockwise means c lies to the left of the directed line a->b.
	CounterClockwise Orientation = 1
)

// String returns a human-readable name for o.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "unknown"
	}
}

// Orient computes the sign of (b.x-a.x)(c.y-a.y) - (b.y-a.y)(c.x-a.x).
//
// The product of two coordinate differences can reach roughly 4*SCALE^2,
// and the predicate subtracts two such products — comfortably outside
// int64's exact range once SCALE is large. Orient forms the cross product
// in rational.Big (backed by math/big.Int) rather than native int64
// arithmetic so the 128-bit-class precision the formula requires is exact
// regardless of operand magnitude, never merely "usually wide enough".
func Orient(a, b, c fixedpoint.PointI64) Orientation {
	bax := bigOf(b.X - a.X)
	bay := bigOf(b.Y - a.Y)
	cax := bigOf(c.X - a.X)
	cay := bigOf(c.Y - a.Y)

	cross := bax.Mul(cay).Sub(bay.Mul(cax))
	switch cross.Sign() {
	case 0:
		return Collinear
	case -1:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// OnSegment reports whether p is collinear with a and b and lies within the
// axis-aligned bounding box of a and b, inclusive of the boundary.
func OnSegment(a, b, p fixedpoint.PointI64) bool {
	if Orient(a, b, p) != Collinear {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func bigOf(c fixedpoint.Coord) rational.Big {
	return rational.NewBig(int64(c))
}
