// Package fixedpoint defines the integer coordinate grid the sweep kernel
// operates on, grounded on the role github.com/mikenye/geom2d/point plays
// in its own library — the single foundational primitive every other
// geometric type is built from.
//
// # Overview
//
// Unlike geom2d's Point (float64 coordinates, epsilon-tolerant equality),
// Coord and PointI64 are exact: every coordinate is a signed integer
// confined to [-SCALE, +SCALE], and equality is bitwise. This is the grid
// produced by quantizing external floating-point input (see Quantize) and
// consumed by the rest of this module's exact kernel.
package fixedpoint

import (
	"fmt"

	"github.com/jiangshengdev/sweep-line/rational"
)

// Scale is the fixed-point grid's bound: Coord values range over
// [-Scale, +Scale]. 10^9 gives roughly nanometer resolution over a unit
// square, comfortably inside int64 even after the kernel's 128-bit
// intermediate products.
const Scale int64 = 1_000_000_000

// Coord is a single fixed-point coordinate.
type Coord int64

// InRange reports whether c lies within [-Scale, +Scale].
func (c Coord) InRange() bool {
	return c >= -Coord(Scale) && c <= Coord(Scale)
}

// PointI64 is a point on the fixed-point grid.
type PointI64 struct {
	X Coord
	Y Coord
}

// NewPointI64 returns the point (x, y).
func NewPointI64(x, y Coord) PointI64 {
	return PointI64{X: x, Y: y}
}

// Eq reports whether p and other are the same point.
func (p PointI64) Eq(other PointI64) bool {
	return p.X == other.X && p.Y == other.Y
}

// Cmp orders p and other lexicographically by X, then Y — the total order
// §3 of the specification requires PointI64 to support.
func (p PointI64) Cmp(other PointI64) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// Le reports whether p sorts at or before other.
func (p PointI64) Le(other PointI64) bool { return p.Cmp(other) <= 0 }

// String returns "(x, y)".
func (p PointI64) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ToPointRat lifts p onto the exact rational plane, the representation
// every computed intersection point (proper or otherwise) is expressed in.
func (p PointI64) ToPointRat() rational.PointRat {
	return rational.PointRatFromInt(int64(p.X), int64(p.Y))
}
