// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpn evaluates reverse polish notation expressions over toobig
// Floats.
//
// Numbers are pushed on the stack, operators pop their operands and push their
// result:
//
//	+ - * /        binary arithmetic
//	pow            x**y
//	powi           x**n, n an integer
//	min max        minimum, maximum
//	neg abs sqrt   unary
//	ln log10 exp   unary
//	dup swap drop  stack manipulation
package rpn

import (
	"errors"
	"fmt"
	"math"

	"github.com/db47h/toobig"
	"github.com/db47h/toobig/context"
	"github.com/zeebo/errs"
)

// Error is the error class of evaluation errors.
var Error = errs.Class("rpn")

// ErrUnderflow is returned when an operator finds too few operands on the
// stack.
var ErrUnderflow = errors.New("stack underflow")

type stack []toobig.Float

func (s *stack) push(x toobig.Float) { *s = append(*s, x) }

func (s *stack) pop() toobig.Float {
	n := len(*s) - 1
	x := (*s)[n]
	*s = (*s)[:n]
	return x
}

type op struct {
	arity int
	fn    func(ctx *context.Context, s *stack, args []toobig.Float) error
}

func unary(fn func(ctx *context.Context, x toobig.Float) toobig.Float) op {
	return op{1, func(ctx *context.Context, s *stack, a []toobig.Float) error {
		s.push(fn(ctx, a[0]))
		return nil
	}}
}

func binary(fn func(ctx *context.Context, x, y toobig.Float) toobig.Float) op {
	return op{2, func(ctx *context.Context, s *stack, a []toobig.Float) error {
		s.push(fn(ctx, a[0], a[1]))
		return nil
	}}
}

var ops = map[string]op{
	"+":     binary((*context.Context).Add),
	"-":     binary((*context.Context).Sub),
	"*":     binary((*context.Context).Mul),
	"/":     binary((*context.Context).Quo),
	"pow":   binary((*context.Context).Pow),
	"min":   binary(func(_ *context.Context, x, y toobig.Float) toobig.Float { return toobig.Min(x, y) }),
	"max":   binary(func(_ *context.Context, x, y toobig.Float) toobig.Float { return toobig.Max(x, y) }),
	"neg":   unary((*context.Context).Neg),
	"abs":   unary((*context.Context).Abs),
	"sqrt":  unary((*context.Context).Sqrt),
	"ln":    unary((*context.Context).Log),
	"log10": unary((*context.Context).Log10),
	"exp":   unary((*context.Context).Exp),
	"powi": {2, func(ctx *context.Context, s *stack, a []toobig.Float) error {
		f, ok := a[1].Float64Checked()
		if !ok || f < -(1<<63) || f >= 1<<63 || f != math.Trunc(f) {
			return fmt.Errorf("powi: exponent %v is not an int64", a[1])
		}
		s.push(ctx.Powi(a[0], int64(f)))
		return nil
	}},
	"dup": {1, func(_ *context.Context, s *stack, a []toobig.Float) error {
		s.push(a[0])
		s.push(a[0])
		return nil
	}},
	"swap": {2, func(_ *context.Context, s *stack, a []toobig.Float) error {
		s.push(a[1])
		s.push(a[0])
		return nil
	}},
	"drop": {1, func(*context.Context, *stack, []toobig.Float) error { return nil }},
}

// Eval evaluates tokens and returns the resulting stack, bottom first.
//
// Invalid operations, like a division of zero by zero, are reported as
// errors wrapping the toobig.ErrNaN recorded by ctx. Numbers are parsed
// through ctx, so that parse errors are logged by its logger. An error pending
// in ctx when Eval is called is returned without evaluating tokens. If ctx is
// nil, a new context is used.
func Eval(ctx *context.Context, tokens []string) ([]toobig.Float, error) {
	if ctx == nil {
		ctx = context.New()
	}
	if err := ctx.Err(); err != nil {
		return nil, Error.New("pending context error: %w", err)
	}
	var s stack
	for i, tok := range tokens {
		o, ok := ops[tok]
		if !ok {
			x := ctx.Parse(tok)
			if err := ctx.Err(); err != nil {
				return nil, Error.New("token %d: unknown token %q: %w", i, tok, err)
			}
			s.push(x)
			continue
		}
		if len(s) < o.arity {
			return nil, Error.New("token %d: %q: %w", i, tok, ErrUnderflow)
		}
		args := make([]toobig.Float, o.arity)
		for j := o.arity - 1; j >= 0; j-- {
			args[j] = s.pop()
		}
		if err := o.fn(ctx, &s, args); err != nil {
			return nil, Error.New("token %d: %w", i, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, Error.New("token %d: %q: %w", i, tok, err)
		}
	}
	return s, nil
}
