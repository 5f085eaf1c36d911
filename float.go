// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import (
	"fmt"
	"math"
)

const debugFloat = false // enable for debugging

// Internal representation: the mantissa of a non-zero finite Float x is
// stored in x.mant with 1 <= |x.mant| < 10. The sign of x is the sign of
// x.mant.
//
// A zero or non-finite Float x ignores x.exp.
//
// x                 mant              exp
// -------------------------------------------------
// 0                 0                 -
// 0 < |x| < +Inf    ±[1, 10)          exponent
// ±Inf              ±Inf              -
// NaN               NaN               -

// A Float represents the value mant × 10**exp, where exp is either an int64
// or, for magnitudes such as 10**(10**100), a Float itself.
//
// The zero value for a Float is 0. Floats are immutable values: all
// operations return a new Float and never modify their operands.
type Float struct {
	mant float64
	exp  Exponent
}

// New returns the normalized value of mant × 10**exp.
func New(mant float64, exp int64) Float {
	return NewExp(mant, Exponent{small: exp})
}

// NewExp returns the normalized value of mant × 10**exp.
func NewExp(mant float64, exp Exponent) Float {
	switch {
	case mant == 0:
		return Float{}
	case math.IsNaN(mant):
		return NaN()
	case math.IsInf(mant, 0):
		return Float{mant: mant}
	}
	if exp.large != nil {
		switch e := exp.large; {
		case e.IsNaN():
			return NaN()
		case e.IsInf():
			if e.mant < 0 {
				// 10**-Inf
				return Float{}
			}
			return Inf(sign(mant))
		}
	}
	m, shift := frexp10(mant)
	if shift == 0 {
		return Float{mant: m, exp: exp}
	}
	return NewExp(m, exp.add(Exponent{small: int64(shift)}))
}

// Zero returns 0.
func Zero() Float {
	return Float{}
}

// Inf returns +Inf if sign >= 0, -Inf if sign < 0.
func Inf(sign int) Float {
	return Float{mant: math.Inf(sign)}
}

// NaN returns a not-a-number value.
func NaN() Float {
	return Float{mant: math.NaN()}
}

// Mantissa returns the mantissa of x. For non-zero finite values, its
// absolute value is in the range [1, 10). Zero, ±Inf and NaN return 0,
// ±Inf and NaN respectively.
func (x Float) Mantissa() float64 {
	return x.mant
}

// Exponent returns the base 10 exponent of x. The result is meaningless
// for zero and non-finite values.
func (x Float) Exponent() Exponent {
	if !x.IsFinite() || x.IsZero() {
		return Exponent{}
	}
	return x.exp
}

// IsZero reports whether x is 0.
func (x Float) IsZero() bool {
	return x.mant == 0
}

// IsNaN reports whether x is a NaN.
func (x Float) IsNaN() bool {
	return x.mant != x.mant
}

// IsInf reports whether x is +Inf or -Inf.
func (x Float) IsInf() bool {
	return math.IsInf(x.mant, 0)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func (x Float) IsFinite() bool {
	return !x.IsNaN() && !x.IsInf()
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is 0 or NaN
//	+1 if x >   0
//
func (x Float) Sign() int {
	if x.IsNaN() {
		return 0
	}
	return sign(x.mant)
}

// Signbit reports whether x is negative.
func (x Float) Signbit() bool {
	return math.Signbit(x.mant)
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// frexp10 breaks f into a mantissa m with 1 <= |m| < 10 and a power of ten
// such that f == m × 10**e (up to rounding). f must be finite and non-zero.
func frexp10(f float64) (m float64, e int) {
	a := math.Abs(f)
	if a >= 1 && a < 10 {
		return f, 0
	}
	e = int(math.Floor(math.Log10(a)))
	m = scale10(f, -e)
	// Log10 may be off by one near powers of ten.
	for math.Abs(m) >= 10 {
		m /= 10
		e++
	}
	for math.Abs(m) < 1 {
		m *= 10
		e--
	}
	return m, e
}

// scale10 returns f × 10**n without overflowing intermediate results for
// any n that brings f back into float64 range.
func scale10(f float64, n int) float64 {
	for n > 300 {
		f *= 1e300
		n -= 300
	}
	for n < -300 {
		f /= 1e300
		n += 300
	}
	if n < 0 {
		return f / math.Pow10(-n)
	}
	return f * math.Pow10(n)
}

// validate returns a non-nil error if x breaks the normalization invariants.
func (x Float) validate() error {
	if !x.IsFinite() || x.IsZero() {
		return nil
	}
	if m := math.Abs(x.mant); m < 1 || m >= 10 {
		return fmt.Errorf("mantissa %v of %s out of range", x.mant, x)
	}
	if e := x.exp.large; e != nil {
		if !e.IsFinite() {
			return fmt.Errorf("non-finite exponent %s", e)
		}
		if _, ok := int64Of(*e); ok {
			return fmt.Errorf("exponent %s should not be escalated", e)
		}
		return e.validate()
	}
	return nil
}

func (x Float) mustValidate() {
	if !debugFloat {
		// avoid performance bugs
		panic("mustValidate called but debugFloat is not set")
	}
	if err := x.validate(); err != nil {
		panic(err.Error())
	}
}
