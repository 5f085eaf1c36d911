// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/toobig"
	"github.com/db47h/toobig/context"
)

// runDemo prints a walk-through of basic operations on toobig Floats.
func runDemo(w io.Writer, ctx *context.Context) {
	fmt.Fprintln(w, "=== toobig demo ===")

	fmt.Fprintln(w, "\n1. Basic operations:")
	a, b := toobig.New(1.5, 100), toobig.New(2.5, 100)
	fmt.Fprintf(w, "a = %v\n", a)
	fmt.Fprintf(w, "b = %v\n", b)
	fmt.Fprintf(w, "a + b = %v\n", ctx.Add(a, b))
	fmt.Fprintf(w, "a * b = %v\n", ctx.Mul(a, b))

	fmt.Fprintln(w, "\n2. Very large numbers:")
	huge := toobig.New(1, 1000)
	fmt.Fprintf(w, "1e1000 = %v\n", huge)
	fmt.Fprintf(w, "1e1000 * 2 = %v\n", ctx.Mul(huge, toobig.FromFloat64(2)))

	fmt.Fprintln(w, "\n3. Nested exponentials:")
	nested := ctx.Parse("1e1e100")
	fmt.Fprintf(w, "1e1e100 = %v\n", nested)
	fmt.Fprintf(w, "(1e1e100)² = %v\n", ctx.Mul(nested, nested))

	fmt.Fprintln(w, "\n4. Mathematical functions:")
	two := toobig.FromFloat64(2)
	fmt.Fprintf(w, "ln(2) = %v\n", ctx.Log(two))
	fmt.Fprintf(w, "log10(1000) = %v\n", ctx.Log10(toobig.New(1, 3)))
	fmt.Fprintf(w, "2^10 = %v\n", ctx.Powi(two, 10))
	fmt.Fprintf(w, "sqrt(1e1001) = %.6v\n", ctx.Sqrt(toobig.New(1, 1001)))

	fmt.Fprintln(w, "\n5. Comparisons:")
	x, y := toobig.New(1, 50), toobig.New(1, 100)
	fmt.Fprintf(w, "1e50 < 1e100: %v\n", x.Less(y))
	fmt.Fprintf(w, "max(1e50, 1e100) = %v\n", toobig.Max(x, y))

	fmt.Fprintln(w, "\n6. String parsing:")
	fmt.Fprintf(w, "parsed '1.23e456': %v\n", ctx.Parse("1.23e456"))

	fmt.Fprintln(w, "\n7. Precision with large numbers:")
	fmt.Fprintf(w, "1e100 + 1e90 = %v\n", ctx.Add(toobig.New(1, 100), toobig.New(1, 90)))
	fmt.Fprintf(w, "1e100 + 1e80 = %v\n", ctx.Add(toobig.New(1, 100), toobig.New(1, 80)))

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(w, "\nerror: %v\n", err)
	}
}
