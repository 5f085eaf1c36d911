// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/db47h/toobig"
	"github.com/db47h/toobig/context"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var floatComparer = cmp.Comparer(func(x, y toobig.Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return x.IsNaN() && y.IsNaN()
	}
	return x.Cmp(y) == 0
})

func TestEval(t *testing.T) {
	for _, d := range []struct {
		expr string
		want []string
	}{
		{"", nil},
		{"1 2 +", []string{"3"}},
		{"1 2 -", []string{"-1"}},
		{"6 7 *", []string{"42"}},
		{"1 4 /", []string{"0.25"}},
		{"2 10 pow", []string{"1024"}},
		{"10 1000 powi", []string{"1e1000"}},
		{"2 -2 powi", []string{"0.25"}},
		{"3 neg abs", []string{"3"}},
		{"9e100 sqrt", []string{"3e50"}},
		{"1e1e100 log10", []string{"1e100"}},
		{"0 exp", []string{"1"}},
		{"1 ln", []string{"0"}},
		{"1 2 min 3 4 max", []string{"1", "4"}},
		{"1 2 swap", []string{"2", "1"}},
		{"5 dup *", []string{"25"}},
		{"1 2 drop", []string{"1"}},
		{"1e1e100 dup *", []string{"1e2e100"}},
		{"1 0 /", []string{"inf"}},
		{"inf neg", []string{"-inf"}},
		{"nan 1 +", []string{"nan"}},
	} {
		t.Run(d.expr, func(t *testing.T) {
			got, err := Eval(context.New(), strings.Fields(d.expr))
			require.NoError(t, err)
			var want []toobig.Float
			for _, s := range d.want {
				want = append(want, toobig.MustParse(s))
			}
			if diff := cmp.Diff(want, got, floatComparer); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", d.expr, diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	for _, d := range []struct {
		expr string
		is   error
		msg  string
	}{
		{"1 +", ErrUnderflow, `token 1: "+": stack underflow`},
		{"drop", ErrUnderflow, `token 0: "drop": stack underflow`},
		{"1 foo", toobig.ErrSyntax, `token 1: unknown token "foo"`},
		{"0 0 /", toobig.ErrNaN{Msg: "division of zero by zero or infinity by infinity"}, `token 2: "/": division of zero by zero`},
		{"-1 sqrt", toobig.ErrNaN{Msg: "square root of negative operand"}, `token 1: "sqrt": square root`},
		{"2 0.5 powi", nil, "token 2: powi: exponent 0.5 is not an int64"},
		{"2 1e30 powi", nil, "not an int64"},
	} {
		t.Run(d.expr, func(t *testing.T) {
			got, err := Eval(nil, strings.Fields(d.expr))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, Error.Has(err), "%v is not an rpn error", err)
			if d.is != nil {
				assert.True(t, errors.Is(err, d.is), "%v is not %v", err, d.is)
			}
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

// TestEvalContext checks that an error recorded by Eval does not leak into
// the next evaluation.
func TestEvalContext(t *testing.T) {
	ctx := context.New()
	_, err := Eval(ctx, []string{"0", "0", "/"})
	require.Error(t, err)
	got, err := Eval(ctx, []string{"1", "1", "+"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(toobig.FromInt64(2)))
}

func TestEvalParseLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.New(context.WithLogger(zap.New(core)))
	_, err := Eval(ctx, []string{"1", "2e", "+"})
	require.Error(t, err)
	assert.ErrorIs(t, err, toobig.ErrSyntax)

	entries := logs.FilterMessage("parse error").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "2e", entries[0].ContextMap()["input"])
	// the error does not stay pending in ctx
	assert.NoError(t, ctx.Err())
}

func TestEvalPendingError(t *testing.T) {
	ctx := context.New()
	ctx.Quo(toobig.Zero(), toobig.Zero())
	_, err := Eval(ctx, []string{"1", "1", "+"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, toobig.ErrNaN{Msg: "division of zero by zero or infinity by infinity"}))
	assert.Contains(t, err.Error(), "pending context error")

	got, err := Eval(ctx, []string{"1", "1", "+"})
	require.NoError(t, err)
	assert.True(t, got[0].Equal(toobig.FromInt64(2)))
}

func BenchmarkEval(b *testing.B) {
	tokens := strings.Fields("1e1e100 dup * 2 pow sqrt log10 1 +")
	ctx := context.New()
	for i := 0; i < b.N; i++ {
		if _, err := Eval(ctx, tokens); err != nil {
			b.Fatal(err)
		}
	}
}
