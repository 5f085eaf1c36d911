package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/toobig"
	"github.com/db47h/toobig/context"
)

var _four = toobig.FromInt64(-4)
var two = toobig.FromInt64(2)

// solve solves the quadratic equation ax² + bx + c = 0. It can fail with
// various combinations of inputs, for example a = 0, b = 2, c = -3 will result
// in dividing zero by zero when computing x0. So we need to check errors.
func solve(ctx *context.Context, a, b, c toobig.Float) (x0, x1 toobig.Float, err error) {
	// compute discriminant
	d := ctx.Mul(a, _four)        // d = a × -4
	d = ctx.Mul(d, c)             //     × c
	d = ctx.Add(ctx.Mul(b, b), d) //     + b × b
	if err = ctx.Err(); err != nil {
		return x0, x1, fmt.Errorf("error computing discriminant: %w", err)
	}
	if d.Sign() < 0 {
		return x0, x1, errors.New("no real roots")
	}
	d = ctx.Sqrt(d)
	twoA := ctx.Mul(a, two)
	negB := ctx.Neg(b)

	x0 = ctx.Quo(ctx.Add(negB, d), twoA)
	x1 = ctx.Quo(ctx.Sub(negB, d), twoA)

	if err = ctx.Err(); err != nil {
		return x0, x1, fmt.Errorf("error computing roots: %w", err)
	}
	return
}

// Example demonstrates error handling with Contexts.
func Example() {
	ctx := context.New()
	a, b, c := toobig.FromInt64(1), toobig.FromInt64(2), toobig.FromInt64(-3)
	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve %g×x²%+gx%+g: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %g×x²%+gx%+g: %g, %g\n", a, b, c, x0, x1)

	a = toobig.Zero()
	x0, x1, err = solve(ctx, a, b, c)
	if err != nil {
		// obviously, our solve() algorithm cannot handle a == 0
		fmt.Printf("failed to solve %g×x²%+gx%+g: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %g×x²%+gx%+g: %g, %g\n", a, b, c, x0, x1)
	//
	// Output:
	// roots of 1×x²+2x-3: 1, -3
	// failed to solve 0×x²+2x-3: error computing roots: division of zero by zero or infinity by infinity
}
