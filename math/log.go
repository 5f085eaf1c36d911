// Package math provides transcendental functions for toobig Floats.
//
// All functions return NaN rather than panic on domain errors. Results are
// computed from the float64 mantissa and the exponent of their argument: their
// accuracy is that of a float64, relative to the magnitude of the result's
// exponent.
package math

import (
	stdmath "math"

	"github.com/db47h/toobig"
)

// constants
var (
	one    = toobig.New(1, 0)
	ln10   = toobig.FromFloat64(stdmath.Ln10)
	log10e = toobig.FromFloat64(stdmath.Log10E)
)

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x toobig.Float) toobig.Float {
	if z, ok := logSpecial(x); ok {
		return z
	}
	// ln(m×10**e) = ln(m) + e×ln(10)
	m, e := x.Mantissa(), x.Exponent()
	return toobig.FromFloat64(stdmath.Log(m)).Add(e.Float().Mul(ln10))
}

// Log10 returns the decimal logarithm of x. The special cases are the same as
// for Log.
func Log10(x toobig.Float) toobig.Float {
	if z, ok := logSpecial(x); ok {
		return z
	}
	m, e := x.Mantissa(), x.Exponent()
	return toobig.FromFloat64(stdmath.Log10(m)).Add(e.Float())
}

func logSpecial(x toobig.Float) (toobig.Float, bool) {
	switch {
	case x.IsNaN() || x.Sign() < 0:
		return toobig.NaN(), true
	case x.IsZero():
		return toobig.Inf(-1), true
	case x.IsInf():
		return x, true
	}
	return toobig.Float{}, false
}
