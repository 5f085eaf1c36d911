package math

import "github.com/db47h/toobig"

// Sqrt returns the square root of x.
//
// Sqrt(x < 0) = NaN, Sqrt(±0) = 0, Sqrt(+Inf) = +Inf.
//
// This function is a proxy for x.Sqrt().
func Sqrt(x toobig.Float) toobig.Float {
	return x.Sqrt()
}

// Abs returns the absolute value of x.
//
// This function is a proxy for x.Abs().
func Abs(x toobig.Float) toobig.Float {
	return x.Abs()
}
