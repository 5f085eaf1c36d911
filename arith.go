// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic engine: addition, subtraction,
// multiplication and division performed directly on mantissa/exponent pairs.

package toobig

import "math"

// MaxAlignDigits is the largest exponent difference between the operands of
// an addition for which the smaller operand still contributes to the result.
//
// For a difference of 18 or more, the aligned mantissa of the smaller operand
// is below 1e-17, less than half a unit in the last place of any mantissa in
// [1, 10) (2**-54 ≈ 5.55e-17 just below 1): float64 rounding would discard it
// anyway.
const MaxAlignDigits = 17

var (
	one = Float{mant: 1}
	two = Float{mant: 2}
)

// pow10tab holds the powers of ten used for mantissa alignment. All are
// exactly representable.
var pow10tab = [...]float64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07, 1e08, 1e09,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17,
}

// Add returns the sum x+y.
//
// Adding infinities of opposite sign yields NaN. When the exponents of x and
// y differ by more than MaxAlignDigits, or when only one of them is escalated,
// the result is the operand with the larger exponent.
func (x Float) Add(y Float) Float {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN()
	case x.IsInf() || y.IsInf():
		// ±Inf+finite = ±Inf, ±Inf+∓Inf = NaN: let float64 decide.
		return FromFloat64(x.mant + y.mant)
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	}

	// x is the dominant operand
	if x.exp.Cmp(y.exp) < 0 {
		x, y = y, x
	}
	if (x.exp.large == nil) != (y.exp.large == nil) {
		// an escalated exponent is beyond any int64 one
		return x
	}
	d, ok := x.exp.sub(y.exp).Int64()
	if !ok || d > MaxAlignDigits {
		return x
	}
	z := NewExp(x.mant+y.mant/pow10tab[d], x.exp)
	if debugFloat {
		z.mustValidate()
	}
	return z
}

// Sub returns the difference x-y.
func (x Float) Sub(y Float) Float {
	return x.Add(y.Neg())
}

// Mul returns the product x×y.
//
// 0×±Inf yields NaN.
func (x Float) Mul(y Float) Float {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN()
	case x.IsInf() || y.IsInf():
		if x.IsZero() || y.IsZero() {
			return NaN()
		}
		return Inf(x.Sign() * y.Sign())
	case x.IsZero() || y.IsZero():
		return Float{}
	}
	z := NewExp(x.mant*y.mant, x.exp.add(y.exp))
	if debugFloat {
		z.mustValidate()
	}
	return z
}

// Quo returns the quotient x/y.
//
// A non-zero x divided by 0 yields ±Inf with the sign of x. 0/0 and
// ±Inf/±Inf yield NaN.
func (x Float) Quo(y Float) Float {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN()
	case x.IsInf() && y.IsInf():
		return NaN()
	case x.IsInf():
		if y.Sign() < 0 {
			return x.Neg()
		}
		return x
	case y.IsInf():
		return Float{}
	case y.IsZero():
		if x.IsZero() {
			return NaN()
		}
		return Inf(x.Sign())
	case x.IsZero():
		return Float{}
	}
	z := NewExp(x.mant/y.mant, x.exp.sub(y.exp))
	if debugFloat {
		z.mustValidate()
	}
	return z
}

// Neg returns x with its sign negated.
func (x Float) Neg() Float {
	if x.IsZero() {
		return x
	}
	x.mant = -x.mant
	return x
}

// Abs returns |x|.
func (x Float) Abs() Float {
	x.mant = math.Abs(x.mant)
	return x
}

// AddAssign sets *z to z+y.
func (z *Float) AddAssign(y Float) {
	*z = z.Add(y)
}

// SubAssign sets *z to z-y.
func (z *Float) SubAssign(y Float) {
	*z = z.Sub(y)
}

// MulAssign sets *z to z×y.
func (z *Float) MulAssign(y Float) {
	*z = z.Mul(y)
}

// QuoAssign sets *z to z/y.
func (z *Float) QuoAssign(y Float) {
	*z = z.Quo(y)
}
