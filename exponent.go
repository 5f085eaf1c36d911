// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import (
	"math"
	"strconv"
)

// An Exponent is the base 10 exponent of a Float. It holds an int64 unless
// the exponent value is outside the int64 range, in which case it is
// escalated to a Float.
//
// The zero value is the exponent 0.
type Exponent struct {
	small int64
	large *Float // nil unless escalated; never modified once set
}

// int64 bounds as Floats. math.MaxInt64 is not representable as a float64
// and rounds up to 2**63, which is out of range: int64Of compares against
// these with a strict upper bound.
var (
	maxInt64 = Float{mant: 9.223372036854775808, exp: Exponent{small: 18}} // 2**63
	minInt64 = Float{mant: -9.223372036854775808, exp: Exponent{small: 18}}
)

// SmallExp returns the exponent e.
func SmallExp(e int64) Exponent {
	return Exponent{small: e}
}

// LargeExp returns an exponent with the value of the integral part of x. If
// x fits in an int64, the result is not escalated. x must be finite.
func LargeExp(x Float) Exponent {
	if i, ok := int64Of(x); ok {
		return Exponent{small: i}
	}
	return Exponent{large: &x}
}

// int64Of returns the integral part of x and true if it is in the int64
// range.
func int64Of(x Float) (int64, bool) {
	if !x.IsFinite() {
		return 0, false
	}
	if x.IsZero() {
		return 0, true
	}
	if x.exp.large != nil || x.exp.small >= 19 {
		return 0, false
	}
	if x.exp.small < 0 {
		return 0, true
	}
	if x.Cmp(maxInt64) >= 0 || x.Cmp(minInt64) < 0 {
		return 0, false
	}
	f := math.Trunc(x.Float64())
	// rounding in Float64 may land on ±2**63
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}

// IsLarge reports whether e has been escalated to a Float.
func (e Exponent) IsLarge() bool {
	return e.large != nil
}

// Int64 returns e as an int64 and true, or 0 and false if e is escalated.
func (e Exponent) Int64() (int64, bool) {
	if e.large != nil {
		return 0, false
	}
	return e.small, true
}

// Float returns the value of e as a Float.
func (e Exponent) Float() Float {
	if e.large != nil {
		return *e.large
	}
	return FromInt64(e.small)
}

// Sign returns -1, 0 or +1 depending on the sign of e.
func (e Exponent) Sign() int {
	if e.large != nil {
		return e.large.Sign()
	}
	switch {
	case e.small < 0:
		return -1
	case e.small > 0:
		return 1
	}
	return 0
}

// Cmp compares e and f and returns -1, 0 or +1 if e < f, e == f or e > f.
//
// An escalated exponent is always larger in magnitude than any int64
// exponent.
func (e Exponent) Cmp(f Exponent) int {
	switch {
	case e.large == nil && f.large == nil:
		switch {
		case e.small < f.small:
			return -1
		case e.small > f.small:
			return 1
		}
		return 0
	case e.large != nil && f.large != nil:
		return e.large.Cmp(*f.large)
	case e.large != nil:
		return e.large.Sign()
	}
	return -f.large.Sign()
}

// String returns the decimal representation of e.
func (e Exponent) String() string {
	if e.large != nil {
		return e.large.String()
	}
	return strconv.FormatInt(e.small, 10)
}

// add returns e + f. The result is escalated if the sum overflows an int64,
// and demoted if an escalated sum fits.
func (e Exponent) add(f Exponent) Exponent {
	if e.large == nil && f.large == nil {
		s := e.small + f.small
		// overflow iff both operands have the same sign and the sum's
		// sign differs from it.
		if (e.small >= 0) == (f.small >= 0) && (s >= 0) != (e.small >= 0) {
			return e.escalate(f)
		}
		return Exponent{small: s}
	}
	return e.escalate(f)
}

func (e Exponent) escalate(f Exponent) Exponent {
	s := e.Float().Add(f.Float())
	if !s.IsFinite() {
		return Exponent{large: &s}
	}
	return LargeExp(s)
}

// neg returns -e.
func (e Exponent) neg() Exponent {
	if e.large != nil {
		return LargeExp(e.large.Neg())
	}
	if e.small == math.MinInt64 {
		m := maxInt64
		return Exponent{large: &m}
	}
	return Exponent{small: -e.small}
}

// sub returns e - f.
func (e Exponent) sub(f Exponent) Exponent {
	return e.add(f.neg())
}

// odd reports whether e is odd. Escalated exponents are always even since
// float64 values above 2**53 are.
func (e Exponent) odd() bool {
	return e.large == nil && e.small%2 != 0
}

// half returns e/2. e must be even.
func (e Exponent) half() Exponent {
	if e.large != nil {
		return LargeExp(e.large.Quo(two))
	}
	return Exponent{small: e.small / 2}
}
