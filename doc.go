// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package toobig implements approximate floating-point arithmetic on values far
outside the float64 range, such as 10**500 or 10**(10**100).

A Float is a float64 mantissa normalized to 1 <= |m| < 10 and a base 10
Exponent. The exponent is an int64 until it no longer fits, in which case it
escalates to a Float itself. Exponents nest recursively, so there is no
practical limit on magnitude. Precision is always that of a float64 mantissa:
toobig is meant for numbers that are too big, not for numbers that need many
digits.

The zero value for a Float corresponds to 0:

	var x toobig.Float // x is 0

New values are created with constructors:

	x := toobig.New(1.5, 300)          // 1.5e300
	y := toobig.FromFloat64(2)         // 2
	z := toobig.MustParse("1e1e100")   // 10**(10**100)

Floats are immutable values. Operations are methods that return a new value:

	z := x.Mul(y).Add(toobig.FromInt64(1))

The compound forms AddAssign, SubAssign, MulAssign and QuoAssign replace the
value of a variable with the result:

	sum.AddAssign(x)

Operations never fail. Following IEEE-754, invalid operations such as 0/0 or
the square root of a negative number return NaN, and NaN propagates through
subsequent operations. Values beyond even escalated exponents saturate to
±Inf or 0. The context package wraps operations for callers that want NaNs
reported as errors.

When adding values whose exponents differ by more than MaxAlignDigits, the
smaller operand cannot affect the float64 mantissa of the larger one and is
discarded.

Transcendental functions (Log, Exp, Pow and friends) live in the math
subpackage. Float implements fmt.Formatter, fmt.Scanner, and the text, JSON
and gob marshaling interfaces.
*/
package toobig
