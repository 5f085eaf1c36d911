// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style error contexts for Floats.
//
// Operations on toobig.Float values never fail: invalid operations like 0/0 or
// √-1 silently return NaN. A Context wraps these operations and catches NaN
// errors: if an operation generates a NaN from non-NaN operands, the
// operation returns NaN and a toobig.ErrNaN is recorded. Further operations
// with the context will be no-ops (they simply return NaN) until
// (*Context).Err is called to check for errors.
//
// A Context also logs numeric edge events, like an infinite result computed
// from finite operands, at debug level on its logger.
//
// A Context is not safe for concurrent use.
package context

import (
	"github.com/db47h/toobig"
	"github.com/db47h/toobig/math"
	"go.uber.org/zap"
)

const handleNaNs = true

// A Context is a wrapper around Float operations that facilitates error
// handling.
type Context struct {
	log *zap.Logger
	err error
}

// An Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger of a Context. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

// New creates a new context. Unless set by an option, the context logs to a
// no-op logger.
func New(opts ...Option) *Context {
	c := &Context{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Parse is like toobig.Parse. On failure, the error is recorded in c and Parse
// returns NaN.
func (c *Context) Parse(s string) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	x, err := toobig.Parse(s)
	if err != nil {
		c.log.Debug("parse error", zap.String("input", s), zap.Error(err))
		c.err = err
		return toobig.NaN()
	}
	return x
}

// Add returns the sum x+y.
func (c *Context) Add(x, y toobig.Float) toobig.Float {
	return c.binary("add", "addition of infinities with opposite signs", toobig.Float.Add, x, y)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y toobig.Float) toobig.Float {
	return c.binary("sub", "subtraction of infinities with equal signs", toobig.Float.Sub, x, y)
}

// Mul returns the product x×y.
func (c *Context) Mul(x, y toobig.Float) toobig.Float {
	return c.binary("mul", "multiplication of zero with infinity", toobig.Float.Mul, x, y)
}

// Quo returns the quotient x/y.
func (c *Context) Quo(x, y toobig.Float) toobig.Float {
	return c.binary("quo", "division of zero by zero or infinity by infinity", toobig.Float.Quo, x, y)
}

// Pow returns x**y. See math.Pow.
func (c *Context) Pow(x, y toobig.Float) toobig.Float {
	return c.binary("pow", "zero to the zero or negative base with non-integer exponent", math.Pow, x, y)
}

// Powi returns x**n. See math.Powi.
func (c *Context) Powi(x toobig.Float, n int64) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	z := math.Powi(x, n)
	c.check("powi", "", z, x)
	return z
}

// Neg returns x with its sign negated.
func (c *Context) Neg(x toobig.Float) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	return x.Neg()
}

// Abs returns the absolute value of x.
func (c *Context) Abs(x toobig.Float) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	return x.Abs()
}

// Sqrt returns the square root of x.
func (c *Context) Sqrt(x toobig.Float) toobig.Float {
	return c.unary("sqrt", "square root of negative operand", toobig.Float.Sqrt, x)
}

// Log returns the natural logarithm of x.
func (c *Context) Log(x toobig.Float) toobig.Float {
	return c.unary("log", "logarithm of negative operand", math.Log, x)
}

// Log10 returns the decimal logarithm of x.
func (c *Context) Log10(x toobig.Float) toobig.Float {
	return c.unary("log10", "logarithm of negative operand", math.Log10, x)
}

// Exp returns e**x.
func (c *Context) Exp(x toobig.Float) toobig.Float {
	return c.unary("exp", "", math.Exp, x)
}

func (c *Context) unary(op, nan string, fn func(toobig.Float) toobig.Float, x toobig.Float) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	z := fn(x)
	c.check(op, nan, z, x)
	return z
}

func (c *Context) binary(op, nan string, fn func(x, y toobig.Float) toobig.Float, x, y toobig.Float) toobig.Float {
	if handleNaNs {
		if c.err != nil {
			return toobig.NaN()
		}
	}
	z := fn(x, y)
	c.check(op, nan, z, x, y)
	return z
}

// check records an ErrNaN if z is NaN while none of the operands is, and logs
// infinite results of finite operands.
func (c *Context) check(op, nan string, z toobig.Float, operands ...toobig.Float) {
	switch {
	case z.IsNaN():
		for _, x := range operands {
			if x.IsNaN() {
				return
			}
		}
		if nan == "" {
			nan = op + " produced NaN"
		}
		c.err = toobig.ErrNaN{Msg: nan}
		c.log.Debug("NaN result", zap.String("op", op), zap.Stringers("operands", operands), zap.Error(c.err))
	case z.IsInf():
		for _, x := range operands {
			if !x.IsFinite() {
				return
			}
		}
		c.log.Debug("infinite result", zap.String("op", op), zap.Stringers("operands", operands), zap.Stringer("result", z))
	}
}
