// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import "math"

// Sqrt returns the square root of x.
//
// Following IEEE754-2008 (section 7.2), the square root of a negative operand
// is NaN. √0 = 0, √+Inf = +Inf.
func (x Float) Sqrt() Float {
	switch {
	case x.IsNaN() || x.Sign() < 0:
		return NaN()
	case x.IsZero() || x.IsInf():
		return x
	}

	// Compute √(m·10**b) as
	//   √( m)·10**(½b)       if b is even
	//   √(10m)·10**(½(b-1))   if b is odd
	// The mantissa of the result is in [1, √100).
	m, b := x.mant, x.exp
	if b.odd() {
		m *= 10
		b = b.sub(Exponent{small: 1})
	}
	z := NewExp(math.Sqrt(m), b.half())
	if debugFloat {
		z.mustValidate()
	}
	return z
}
