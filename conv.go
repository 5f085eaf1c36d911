// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions to and from native numeric types.

package toobig

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range of base 10 exponents outside of which a Float cannot be converted to
// a non-zero finite float64.
const (
	maxFloat64Exp = 308
	minFloat64Exp = -324
)

// FromFloat64 returns the value of x. ±Inf and NaN are preserved.
func FromFloat64(x float64) Float {
	return New(x, 0)
}

// FromFloat32 returns the value of x. ±Inf and NaN are preserved.
func FromFloat32(x float32) Float {
	return New(float64(x), 0)
}

// FromInt64 returns the (possibly rounded) value of x.
func FromInt64(x int64) Float {
	return New(float64(x), 0)
}

// From returns the (possibly rounded) value of x.
func From[T constraints.Integer | constraints.Float](x T) Float {
	return New(float64(x), 0)
}

// Float64 returns the float64 value nearest to x. If |x| is too large to be
// represented by a float64, the result is ±Inf; if it is too small, the result
// is 0.
func (x Float) Float64() float64 {
	f, _ := x.Float64Checked()
	return f
}

// Float64Checked is like Float64 but also reports whether x is within the
// float64 range. It returns false if a non-zero finite x converts to ±Inf or 0.
func (x Float) Float64Checked() (float64, bool) {
	if x.IsZero() || !x.IsFinite() {
		return x.mant, true
	}
	if x.exp.large != nil {
		if x.exp.large.Sign() > 0 {
			return math.Inf(sign(x.mant)), false
		}
		return 0, false
	}
	switch e := x.exp.small; {
	case e > maxFloat64Exp:
		return math.Inf(sign(x.mant)), false
	case e < minFloat64Exp-1:
		return 0, false
	}
	f := scale10(x.mant, int(x.exp.small))
	return f, f != 0 && !math.IsInf(f, 0)
}
