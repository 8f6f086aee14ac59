// Package rational provides an exact signed-fraction number type used
// throughout this module's geometric kernel wherever a floating-point
// comparison would be unsound.
//
// # Overview
//
// Every comparison the sweep engine makes — where a segment crosses the
// sweep line, whether one segment's slope is steeper than another's, whether
// an intersection lies before or after the current event point — must be
// exact, or the sweep's ordering invariants silently break down on
// adversarial input. Rational gives those comparisons a value type that
// never rounds.
//
// # Features
//
//   - Construction: New reduces a numerator/denominator pair by their GCD and
//     forces a positive denominator; FromInt lifts a plain integer.
//   - Comparison: Cmp orders two Rational values without ever forming the
//     cross-multiplication product num(a)*den(b), which can overflow when
//     numerators are themselves already the product of two 128-bit
//     intermediate values (as they are once the sweep's y(seg,x) formula is
//     applied to a rational sweep position). Cmp instead walks the
//     Stern–Brocot continued-fraction sequence of the two operands.
//   - Zero: the zero value has a unique representation, 0/1.
package rational

import "fmt"

// Rational is a reduced signed fraction with a strictly positive
// denominator. The zero value has a zero denominator and is not a valid
// rational; FromInt(0) is the rational 0/1.
type Rational struct {
	num Big
	den Big
}

// FromInt returns the Rational representation of a plain integer.
func FromInt(v int64) Rational {
	return Rational{num: NewBig(v), den: NewBig(1)}
}

// New returns the reduced Rational num/den. It panics if den is zero, since
// a zero denominator is a programmer error at every call site in this
// module (it can only arise from a bug in the kernel, never from
// attacker-controlled input, which is rejected earlier at quantization).
func New(num, den Big) Rational {
	if den.Sign() == 0 {
		panic(fmt.Errorf("rational: zero denominator"))
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	g := gcdBig(num.Abs(), den)
	if g.Sign() != 0 && !g.IsOne() {
		num, _ = num.QuoRem(g)
		den, _ = den.QuoRem(g)
	}
	return Rational{num: num, den: den}
}

// Num returns the reduced numerator.
func (r Rational) Num() Big { return r.num }

// Den returns the reduced, strictly positive denominator.
func (r Rational) Den() Big { return r.den }

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is the unique zero representation 0/1.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: r.num.Neg(), den: r.den}
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	num := r.num.Mul(other.den).Add(other.num.Mul(r.den))
	den := r.den.Mul(other.den)
	return New(num, den)
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return New(r.num.Mul(other.num), r.den.Mul(other.den))
}

// Eq reports whether r and other are structurally equal after reduction.
// Because construction always reduces and normalizes the sign of the
// denominator, two equal rationals are always bit-identical.
func (r Rational) Eq(other Rational) bool {
	return r.num.Eq(other.num) && r.den.Eq(other.den)
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than
// other.
//
// Cmp never multiplies the two numerators and denominators across each
// other (the classic num(a)*den(b) vs num(b)*den(a) technique), because
// those products can overflow 128 bits once this package is used to hold
// the result of the sweep's y(seg,x) formula evaluated at an
// already-rational sweep position. Instead it walks the same sequence of
// integer quotients the Stern–Brocot tree / continued-fraction expansion
// produces, flipping the comparison direction at each step, which only ever
// needs single-operand integer division.
func (r Rational) Cmp(other Rational) int {
	sa, sb := r.Sign(), other.Sign()
	if sa != sb {
		return cmpInt(sa, sb)
	}
	if sa == 0 {
		return 0
	}
	// Same, nonzero sign: compare |r| and |other| via the continued-fraction
	// walk, then re-apply the sign.
	a := ratPair{num: r.num.Abs(), den: r.den}
	b := ratPair{num: other.num.Abs(), den: other.den}
	mag := cmpMagnitude(a, b)
	if sa < 0 {
		mag = -mag
	}
	return mag
}

// Lt reports whether r < other.
func (r Rational) Lt(other Rational) bool { return r.Cmp(other) < 0 }

// Le reports whether r <= other.
func (r Rational) Le(other Rational) bool { return r.Cmp(other) <= 0 }

// Gt reports whether r > other.
func (r Rational) Gt(other Rational) bool { return r.Cmp(other) > 0 }

// Ge reports whether r >= other.
func (r Rational) Ge(other Rational) bool { return r.Cmp(other) >= 0 }

// String returns "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}

type ratPair struct {
	num, den Big
}

// cmpMagnitude compares two strictly-positive-or-zero rationals (a.num,
// a.den both non-negative, a.den > 0) by repeatedly peeling off integer
// parts, in the manner of the Euclidean algorithm / Stern–Brocot descent.
// Each iteration compares one integer quotient; on a mismatch the branch
// taken at that level of the continued-fraction tree determines the
// ordering, with the direction flipping every level because num/den and
// den/num invert order.
func cmpMagnitude(a, b ratPair) int {
	flip := false
	for {
		if a.den.IsZero() || b.den.IsZero() {
			panic(fmt.Errorf("rational: zero denominator during comparison"))
		}
		qa, ra := a.num.QuoRem(a.den)
		qb, rb := b.num.QuoRem(b.den)

		c := cmpBig(qa, qb)
		if c != 0 {
			if flip {
				return -c
			}
			return c
		}

		// Integer parts equal; compare the fractional remainders, which
		// invert order relative to the parts above them (1/x is
		// order-reversing). If both remainders are zero, the values are
		// equal.
		aZero, bZero := ra.IsZero(), rb.IsZero()
		if aZero && bZero {
			return 0
		}
		if aZero {
			// a has no remainder, b does: a < b at this level, pre-flip.
			if flip {
				return 1
			}
			return -1
		}
		if bZero {
			if flip {
				return -1
			}
			return 1
		}

		a = ratPair{num: a.den, den: ra}
		b = ratPair{num: b.den, den: rb}
		flip = !flip
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
