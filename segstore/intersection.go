package segstore

import (
	"github.com/jiangshengdev/sweep-line/fixedpoint"
	"github.com/jiangshengdev/sweep-line/predicate"
	"github.com/jiangshengdev/sweep-line/rational"
)

// Kind classifies the outcome of intersecting two segments, grounded on
// github.com/mikenye/geom2d/linesegment's IntersectionType enum
// (None/Point/OverlappingSegment), renamed to this module's vocabulary.
type Kind int8

const (
	// None means the two segments do not meet.
	None Kind = iota
	// Point means the two segments meet at exactly one point.
	Point
	// CollinearOverlap means the two segments are collinear and share more
	// than one point; no further detail about the shared span is produced.
	CollinearOverlap
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Point:
		return "Point"
	case CollinearOverlap:
		return "CollinearOverlap"
	default:
		return "unknown"
	}
}

// PointKind classifies a Point result against the pair of segments that
// produced it.
type PointKind int8

const (
	// Proper means the point lies strictly in the interior of both
	// segments.
	Proper PointKind = iota
	// EndpointTouch means the point coincides with at least one endpoint
	// of at least one of the two segments.
	EndpointTouch
)

// String returns a human-readable name for k.
func (k PointKind) String() string {
	switch k {
	case Proper:
		return "Proper"
	case EndpointTouch:
		return "EndpointTouch"
	default:
		return "unknown"
	}
}

// Result is the outcome of intersecting two segments.
type Result struct {
	Kind Kind
	// At holds the intersection point when Kind == Point; zero value
	// otherwise.
	At rational.PointRat
	// PointKind classifies At when Kind == Point.
	PointKind PointKind
}

// Intersect computes the exact intersection of segments a and b, per the
// orientation-based classification grounded on
// github.com/mikenye/geom2d/linesegment/intersection.go's
// LineSegment.Intersection.
func Intersect(a, b Segment) Result {
	o1 := predicate.Orient(a.A, a.B, b.A)
	o2 := predicate.Orient(a.A, a.B, b.B)
	o3 := predicate.Orient(b.A, b.B, a.A)
	o4 := predicate.Orient(b.A, b.B, a.B)

	if o1 == predicate.Collinear && o2 == predicate.Collinear &&
		o3 == predicate.Collinear && o4 == predicate.Collinear {
		return collinearIntersect(a, b)
	}

	if o1 == predicate.Collinear && predicate.OnSegment(a.A, a.B, b.A) {
		return pointResult(ptRat(b.A), a, b)
	}
	if o2 == predicate.Collinear && predicate.OnSegment(a.A, a.B, b.B) {
		return pointResult(ptRat(b.B), a, b)
	}
	if o3 == predicate.Collinear && predicate.OnSegment(b.A, b.B, a.A) {
		return pointResult(ptRat(a.A), a, b)
	}
	if o4 == predicate.Collinear && predicate.OnSegment(b.A, b.B, a.B) {
		return pointResult(ptRat(a.B), a, b)
	}

	if sign(o1) != sign(o2) && sign(o3) != sign(o4) {
		return pointResult(properIntersectionPoint(a, b), a, b)
	}

	return Result{Kind: None}
}

// pointResult wraps p as a Point result, classifying it against the four
// endpoints of a and b.
func pointResult(p rational.PointRat, a, b Segment) Result {
	return Result{Kind: Point, At: p, PointKind: classify(p, a, b)}
}

// classify reports whether p coincides with any of the four endpoints of a
// and b.
func classify(p rational.PointRat, a, b Segment) PointKind {
	for _, ep := range [...]fixedpoint.PointI64{a.A, a.B, b.A, b.B} {
		if p.Eq(ptRat(ep)) {
			return EndpointTouch
		}
	}
	return Proper
}

// properIntersectionPoint computes the exact intersection of two segments
// known (by sign(o1) != sign(o2) && sign(o3) != sign(o4)) to cross properly,
// per the formula in spec §4.4:
//
//	D      = rx*sy - ry*sx
//	t_num  = qpx*sy - qpy*sx
//	x      = (x1*D + rx*t_num) / D
//	y      = (y1*D + ry*t_num) / D
//
// with (rx,ry)=p2-p1, (sx,sy)=q2-q1, (qpx,qpy)=q1-p1. All intermediate
// products are formed in rational.Big, never native int64, since D and
// t_num are themselves products of already-large coordinate differences.
func properIntersectionPoint(a, b Segment) rational.PointRat {
	x1, y1 := bigOf(a.A.X), bigOf(a.A.Y)
	rx, ry := bigOf(a.B.X).Sub(x1), bigOf(a.B.Y).Sub(y1)

	q1x, q1y := bigOf(b.A.X), bigOf(b.A.Y)
	sx, sy := bigOf(b.B.X).Sub(q1x), bigOf(b.B.Y).Sub(q1y)

	qpx, qpy := q1x.Sub(x1), q1y.Sub(y1)

	d := rx.Mul(sy).Sub(ry.Mul(sx))
	tNum := qpx.Mul(sy).Sub(qpy.Mul(sx))

	xNum := x1.Mul(d).Add(rx.Mul(tNum))
	yNum := y1.Mul(d).Add(ry.Mul(tNum))

	return rational.NewPointRat(rational.New(xNum, d), rational.New(yNum, d))
}

// collinearIntersect handles the case where all four orientation tests are
// zero: a and b lie on a common line. The two segments' projections onto
// whichever axis varies (y for a pair of verticals, x otherwise) are
// intersected as 1-D intervals.
func collinearIntersect(a, b Segment) Result {
	if a.IsVertical() && b.IsVertical() {
		return collinearIntersectAxis(a, b, true)
	}
	return collinearIntersectAxis(a, b, false)
}

func collinearIntersectAxis(a, b Segment, useY bool) Result {
	aLo, aHi := axisRange(a, useY)
	bLo, bHi := axisRange(b, useY)

	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}

	if lo > hi {
		return Result{Kind: None}
	}
	if lo < hi {
		return Result{Kind: CollinearOverlap}
	}

	// A single shared coordinate: find the endpoint, among all four, whose
	// axis value equals lo. Collinearity guarantees it exists and that it
	// fully determines the other coordinate.
	for _, ep := range [...]fixedpoint.PointI64{a.A, a.B, b.A, b.B} {
		v := ep.X
		if useY {
			v = ep.Y
		}
		if v == lo {
			return pointResult(ptRat(ep), a, b)
		}
	}
	// Unreachable: lo was derived as the max of two endpoint-derived
	// bounds, so some endpoint always matches.
	return Result{Kind: None}
}

func axisRange(s Segment, useY bool) (lo, hi fixedpoint.Coord) {
	if useY {
		return s.YRange()
	}
	if s.A.X <= s.B.X {
		return s.A.X, s.B.X
	}
	return s.B.X, s.A.X
}

func sign(o predicate.Orientation) int {
	switch {
	case o < 0:
		return -1
	case o > 0:
		return 1
	default:
		return 0
	}
}

func bigOf(c fixedpoint.Coord) rational.Big {
	return rational.NewBig(int64(c))
}

func ptRat(p fixedpoint.PointI64) rational.PointRat {
	return p.ToPointRat()
}
