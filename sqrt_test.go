// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestFloatSqrt(t *testing.T) {
	for _, test := range []struct {
		x    Float
		want Float
	}{
		{New(4, 0), New(2, 0)},
		{New(9, 100), New(3, 50)},
		{New(4, 99), New(math.Sqrt(40), 49)},
		{New(1, -3), New(math.Sqrt(10), -2)},
		{New(2.5, -7), New(5, -4)},
		{New(1, 1000), New(1, 500)},
		{MustParse("1e1e100"), NewExp(1, LargeExp(New(5, 99)))},
		{Zero(), Zero()},
		{Inf(1), Inf(1)},
		{New(-1, 0), NaN()},
		{Inf(-1), NaN()},
		{NaN(), NaN()},
	} {
		got := test.x.Sqrt()
		if !alike(got, test.want) {
			t.Errorf("Sqrt(%v) = %v; want %v", test.x, got, test.want)
		}
	}
}

func TestFloatSqrtSquare(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		x := randFloat(r, 100000).Abs()
		z := x.Sqrt()
		require.NoError(t, z.validate())
		// z² = x
		ratio := z.Mul(z).Quo(x).Float64()
		require.True(t, scalar.EqualWithinRel(ratio, 1, 2e-15), "Sqrt(%v)² = %v", x, z.Mul(z))
	}
}

func BenchmarkFloatSqrt(b *testing.B) {
	x := New(2, 12345)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		x.Sqrt()
	}
}
