package math

import (
	stdmath "math"

	"github.com/db47h/toobig"
)

// Pow returns x**y, the base-x exponential of y.
//
// Special cases are (in order):
//
//	Pow(0, 0) = NaN
//	Pow(x, 0) = 1 for any other x
//	Pow(x, NaN) = Pow(NaN, y) = NaN
//	Pow(0, y) = 0 for y > 0, +Inf for y < 0
//	Pow(x, ±Inf) = 1 for |x| == 1
//	Pow(x, +Inf) = +Inf for |x| > 1, 0 for |x| < 1
//	Pow(x, -Inf) = 0 for |x| > 1, +Inf for |x| < 1
//	Pow(x < 0, y) = NaN for finite non-integer y
//
// For integer y, a negative x yields a negative result if y is odd.
func Pow(x, y toobig.Float) toobig.Float {
	switch {
	case y.IsZero():
		if x.IsZero() {
			return toobig.NaN()
		}
		return one
	case x.IsNaN() || y.IsNaN():
		return toobig.NaN()
	case x.IsZero():
		if y.Sign() > 0 {
			return toobig.Zero()
		}
		return toobig.Inf(1)
	case y.IsInf():
		c := x.CmpAbs(one)
		switch {
		case c == 0:
			return one
		case (c > 0) == (y.Sign() > 0):
			return toobig.Inf(1)
		}
		return toobig.Zero()
	}

	integer, odd := isInt(y)
	if integer {
		if n, ok := int64Of(y); ok {
			return Powi(x, n)
		}
	} else if x.Sign() < 0 {
		return toobig.NaN()
	}

	var z toobig.Float
	if x.IsInf() {
		if y.Sign() > 0 {
			z = toobig.Inf(1)
		}
	} else {
		// x**y = e**(y×ln|x|)
		z = Exp(y.Mul(Log(x.Abs())))
	}
	if x.Sign() < 0 && odd {
		return z.Neg()
	}
	return z
}

// isInt reports whether y is an integer, and if so, whether it is odd.
func isInt(y toobig.Float) (integer, odd bool) {
	f, ok := y.Float64Checked()
	if !ok {
		// beyond float64 range, values are even integers; below, they
		// are not integers.
		return y.Exponent().Sign() > 0, false
	}
	if f != stdmath.Trunc(f) {
		return false, false
	}
	return true, stdmath.Abs(f) < 1<<53 && stdmath.Mod(f, 2) != 0
}

// int64Of returns the value of the integer y as an int64 and true if it is in
// the int64 range.
func int64Of(y toobig.Float) (int64, bool) {
	f, ok := y.Float64Checked()
	if !ok || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// Powi returns x**n.
//
// Powi(x, 0) = 1 for any x, NaN included. For n < 0, Powi(x, n) = 1/x**-n.
func Powi(x toobig.Float, n int64) toobig.Float {
	switch {
	case n == 0:
		return one
	case n < 0:
		// -n overflows for math.MinInt64
		return one.Quo(pow(x, uint64(-(n+1))+1))
	}
	return pow(x, uint64(n))
}

// pow returns x**n by repeated squaring.
func pow(x toobig.Float, n uint64) toobig.Float {
	z := one
	for {
		if n&1 != 0 {
			z = z.Mul(x)
		}
		n >>= 1
		if n == 0 {
			return z
		}
		x = x.Mul(x)
		if x.IsInf() || x.IsZero() || x.IsNaN() {
			// absorbing values
			return z.Mul(x)
		}
	}
}
