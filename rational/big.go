package rational

import (
	"fmt"
	"math/big"
)

// Big is an arbitrary-precision signed integer. It exists as a thin,
// value-typed wrapper around math/big.Int so that Rational's API reads in
// terms of this package's own vocabulary (Sign, Abs, QuoRem, Eq) instead of
// requiring every caller to reach into math/big directly.
//
// The kernel needs at least 128-bit intermediate precision (spec'd
// explicitly, since orient() and the sweep's y(seg,x) formula both form
// products of already-large coordinates); math/big.Int is the standard
// library's arbitrary-precision integer and is used here because no
// third-party big-integer package appears anywhere in the reference corpus,
// and hand-rolling 128-bit arithmetic would reintroduce exactly the
// overflow risk this package exists to eliminate.
type Big struct {
	v big.Int
}

// NewBig returns the Big representation of a native int64.
func NewBig(v int64) Big {
	var b Big
	b.v.SetInt64(v)
	return b
}

// NewBigFromString parses a base-10 string into a Big. It panics on a
// malformed string, which can only happen from a programmer error (this
// module never parses untrusted numeric strings through this path — JSON
// decimal-string rationals are parsed by session.ParseRational, which
// returns an error instead).
func NewBigFromString(s string) Big {
	var b Big
	if _, ok := b.v.SetString(s, 10); !ok {
		panic("rational: invalid big integer literal: " + s)
	}
	return b
}

// ParseBig parses a base-10 string into a Big, returning an error rather
// than panicking on a malformed string. This is the entry point untrusted
// decimal strings (session JSON rationals) must go through; NewBigFromString
// remains for literals a caller controls.
func ParseBig(s string) (Big, error) {
	var b Big
	if _, ok := b.v.SetString(s, 10); !ok {
		return Big{}, fmt.Errorf("rational: invalid big integer literal: %q", s)
	}
	return b, nil
}

// Sign returns -1, 0, or +1.
func (b Big) Sign() int { return b.v.Sign() }

// IsZero reports whether b is zero.
func (b Big) IsZero() bool { return b.v.Sign() == 0 }

// IsOne reports whether b is exactly one.
func (b Big) IsOne() bool { return b.v.Cmp(big.NewInt(1)) == 0 }

// Neg returns -b.
func (b Big) Neg() Big {
	var r Big
	r.v.Neg(&b.v)
	return r
}

// Abs returns |b|.
func (b Big) Abs() Big {
	var r Big
	r.v.Abs(&b.v)
	return r
}

// Add returns b + other.
func (b Big) Add(other Big) Big {
	var r Big
	r.v.Add(&b.v, &other.v)
	return r
}

// Sub returns b - other.
func (b Big) Sub(other Big) Big {
	var r Big
	r.v.Sub(&b.v, &other.v)
	return r
}

// Mul returns b * other.
func (b Big) Mul(other Big) Big {
	var r Big
	r.v.Mul(&b.v, &other.v)
	return r
}

// QuoRem returns the truncated quotient and remainder of b / d, matching
// Go's native integer division semantics (truncation toward zero).
func (b Big) QuoRem(d Big) (q, r Big) {
	q.v.QuoRem(&b.v, &d.v, &r.v)
	return q, r
}

// Eq reports whether b == other.
func (b Big) Eq(other Big) bool { return b.v.Cmp(&other.v) == 0 }

// Cmp returns -1, 0, or +1 as b is less than, equal to, or greater than
// other.
func (b Big) Cmp(other Big) int { return b.v.Cmp(&other.v) }

// Int64 returns b as an int64. It panics if b does not fit, which would
// indicate a coordinate or intermediate value far outside this module's
// documented [-SCALE, +SCALE] grid — a kernel bug, not user input (user
// input is range-checked at quantization, long before any Big is formed).
func (b Big) Int64() int64 {
	if !b.v.IsInt64() {
		panic("rational: value does not fit in int64: " + b.v.String())
	}
	return b.v.Int64()
}

// String returns the base-10 string representation of b.
func (b Big) String() string { return b.v.String() }

func gcdBig(a, b Big) Big {
	var r Big
	r.v.GCD(nil, nil, &a.v, &b.v)
	return r
}

func cmpBig(a, b Big) int { return a.v.Cmp(&b.v) }
