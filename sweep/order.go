package sweep

import (
	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// YAtX computes y(s, x): the Y coordinate at which the non-vertical segment
// s crosses the vertical line at sweep position x, per §4.5:
//
//	y(s, x) = (y1*q*dx + dy*(p - x1*q)) / (q*dx)
//
// with s = (p1, p2), dx = p2.x - p1.x > 0, dy = p2.y - p1.y, and x = p/q
// (q > 0). Callers must not pass a vertical segment — the sweep status
// never holds one, so no caller in this module can do so except by a bug,
// which is why that case raises
// *sweeperr.ArithmeticOverflow{"y(s, x): vertical segment"} rather than
// returning a nonsensical value.
func YAtX(s segstore.Segment, x rational.Rational) (rational.Rational, error) {
	dx := int64(s.B.X) - int64(s.A.X)
	if dx == 0 {
		return rational.Rational{}, &sweeperr.ArithmeticOverflow{Operation: "y(s, x): vertical segment"}
	}
	if dx < 0 {
		return rational.Rational{}, &sweeperr.ArithmeticOverflow{Operation: "y(s, x): segment not canonicalized"}
	}
	dy := int64(s.B.Y) - int64(s.A.Y)
	x1 := int64(s.A.X)
	y1 := int64(s.A.Y)

	p := x.Num()
	q := x.Den()

	qBig := q
	dxBig := rational.NewBig(dx)
	dyBig := rational.NewBig(dy)
	x1Big := rational.NewBig(x1)
	y1Big := rational.NewBig(y1)

	num := y1Big.Mul(qBig).Mul(dxBig).Add(dyBig.Mul(p.Sub(x1Big.Mul(qBig))))
	den := qBig.Mul(dxBig)

	return rational.New(num, den), nil
}

// Slope returns dy/dx for non-vertical segment s, as an exact Rational.
func Slope(s segstore.Segment) rational.Rational {
	dx := int64(s.B.X) - int64(s.A.X)
	dy := int64(s.B.Y) - int64(s.A.Y)
	return rational.New(rational.NewBig(dy), rational.NewBig(dx))
}

// Comparator orders active segments at the sweep line's current x+ε
// position, per §4.5: compare y(a, x), then slope, then SegmentId. It holds
// the mutable current sweep position, grounded on
// github.com/mikenye/geom2d/linesegment's sweepline_statusstructure_rbt.go
// comparator closure, which likewise captures a mutable pointer to the
// current sweep position so a single comparator instance can be reused as
// the sweep line advances.
type Comparator struct {
	store *segstore.Store
	x     rational.Rational
}

// NewComparator returns a Comparator reading segments from store, with
// sweep position initialized to zero.
func NewComparator(store *segstore.Store) *Comparator {
	return &Comparator{store: store, x: rational.FromInt(0)}
}

// SetSweepX updates the comparator's current sweep position. The engine
// must call this before any status operation at a new event point.
func (c *Comparator) SetSweepX(x rational.Rational) {
	c.x = x
}

// SweepX returns the comparator's current sweep position.
func (c *Comparator) SweepX() rational.Rational {
	return c.x
}

// Less reports whether segment a sorts strictly before segment b at the
// comparator's current sweep position. It panics on *sweeperr.ArithmeticOverflow
// since YAtX only fails when called on a vertical or non-canonical segment,
// both of which indicate an engine bug rather than recoverable input —
// the status structure itself guarantees it never holds a vertical segment.
func (c *Comparator) Less(a, b segstore.SegmentId) bool {
	cmp := c.Cmp(a, b)
	return cmp < 0
}

// Cmp returns -1, 0, or +1 as segment a sorts before, at the same position
// as, or after segment b at the comparator's current sweep position.
func (c *Comparator) Cmp(a, b segstore.SegmentId) int {
	if a == b {
		return 0
	}
	segA, segB := c.store.Get(a), c.store.Get(b)

	ya, err := YAtX(segA, c.x)
	if err != nil {
		panic(err)
	}
	yb, err := YAtX(segB, c.x)
	if err != nil {
		panic(err)
	}
	if d := ya.Cmp(yb); d != 0 {
		return d
	}
	if d := Slope(segA).Cmp(Slope(segB)); d != 0 {
		return d
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
