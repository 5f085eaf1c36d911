package math

import (
	stdmath "math"

	"github.com/db47h/toobig"
)

// Exp returns e**x, the base-e exponential of x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Unlike math.Exp, Exp does not overflow: the exponent of the result is
// escalated as needed.
func Exp(x toobig.Float) toobig.Float {
	if z, ok := expSpecial(x); ok {
		return z
	}
	if f, ok := x.Float64Checked(); ok {
		if r := stdmath.Exp(f); r != 0 && !stdmath.IsInf(r, 0) {
			return toobig.FromFloat64(r)
		}
	}
	// e**x = 10**(x×log10(e))
	return exp10(x.Mul(log10e))
}

// Exp10 returns 10**x, the base-10 exponential of x. The special cases are
// the same as for Exp.
func Exp10(x toobig.Float) toobig.Float {
	if z, ok := expSpecial(x); ok {
		return z
	}
	return exp10(x)
}

func expSpecial(x toobig.Float) (toobig.Float, bool) {
	switch {
	case x.IsNaN():
		return x, true
	case x.IsInf():
		if x.Sign() < 0 {
			return toobig.Zero(), true
		}
		return x, true
	case x.IsZero():
		return one, true
	}
	return toobig.Float{}, false
}

// exp10 returns 10**y for finite y.
func exp10(y toobig.Float) toobig.Float {
	yf, ok := y.Float64Checked()
	if !ok && y.Exponent().Sign() < 0 {
		// |y| below float64 range
		yf, ok = 0, true
	}
	if ok && stdmath.Abs(yf) < 1<<53 {
		// split y into an integral exponent and a mantissa 10**frac
		i := stdmath.Floor(yf)
		return toobig.New(stdmath.Pow(10, yf-i), int64(i))
	}
	// y has no fractional part
	return toobig.NewExp(1, toobig.LargeExp(y))
}
