// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import "math"

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Like cmp.Compare for float64 values, a NaN is considered less than any
// non-NaN, and a NaN is considered equal to a NaN. Use Equal, Less and
// friends for IEEE-754 comparisons.
func (x Float) Cmp(y Float) int {
	xn, yn := x.IsNaN(), y.IsNaN()
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	xs, ys := sign(x.mant), sign(y.mant)
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}
	return x.CmpAbs(y) * xs
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
// The result is 0 if either operand is a NaN.
func (x Float) CmpAbs(y Float) int {
	if x.IsNaN() || y.IsNaN() {
		return 0
	}
	xi, yi := x.IsInf(), y.IsInf()
	switch {
	case xi && yi:
		return 0
	case xi:
		return 1
	case yi:
		return -1
	}
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		return -1
	case yz:
		return 1
	}
	if r := x.exp.Cmp(y.exp); r != 0 {
		return r
	}
	a, b := math.Abs(x.mant), math.Abs(y.mant)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether x == y. It returns false if either operand is NaN.
func (x Float) Equal(y Float) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) == 0
}

// Less reports whether x < y. It returns false if either operand is NaN.
func (x Float) Less(y Float) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0
}

// LessEq reports whether x <= y. It returns false if either operand is NaN.
func (x Float) LessEq(y Float) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0
}

// Greater reports whether x > y. It returns false if either operand is NaN.
func (x Float) Greater(y Float) bool {
	return y.Less(x)
}

// GreaterEq reports whether x >= y. It returns false if either operand is NaN.
func (x Float) GreaterEq(y Float) bool {
	return y.LessEq(x)
}

// Min returns the smaller of x or y. If either is NaN, the result is NaN.
func Min(x, y Float) Float {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if y.Less(x) {
		return y
	}
	return x
}

// Max returns the larger of x or y. If either is NaN, the result is NaN.
func Max(x, y Float) Float {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if y.Greater(x) {
		return y
	}
	return x
}

// Signum returns -1, 0 or +1 as a Float, depending on the sign of x, or NaN
// if x is NaN.
func (x Float) Signum() Float {
	if x.IsNaN() {
		return NaN()
	}
	return Float{mant: float64(x.Sign())}
}
