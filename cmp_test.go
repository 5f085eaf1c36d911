// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ordered holds values in strictly increasing order.
var ordered = []Float{
	Inf(-1),
	MustParse("-1e1e100"),
	MustParse("-2e1e30"),
	New(-1, 5000),
	New(-1, 5),
	New(-1, 0),
	New(-1, -5),
	MustParse("-1e-1e100"),
	Zero(),
	MustParse("1e-1e100"),
	New(1, -5),
	New(1, 0),
	New(1.5, 0),
	New(1, 5),
	New(1, 5000),
	MustParse("2e1e30"),
	MustParse("1e1e100"),
	MustParse("2e1e100"),
	Inf(1),
}

func sgn(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}

func TestFloatCmp(t *testing.T) {
	for i, x := range ordered {
		for j, y := range ordered {
			want := sgn(i - j)
			if got := x.Cmp(y); got != want {
				t.Errorf("%v.Cmp(%v) = %d; want %d", x, y, got, want)
			}
			if got := x.Equal(y); got != (want == 0) {
				t.Errorf("%v.Equal(%v) = %v", x, y, got)
			}
			if got := x.Less(y); got != (want < 0) {
				t.Errorf("%v.Less(%v) = %v", x, y, got)
			}
			if got := x.LessEq(y); got != (want <= 0) {
				t.Errorf("%v.LessEq(%v) = %v", x, y, got)
			}
			if got := x.Greater(y); got != (want > 0) {
				t.Errorf("%v.Greater(%v) = %v", x, y, got)
			}
			if got := x.GreaterEq(y); got != (want >= 0) {
				t.Errorf("%v.GreaterEq(%v) = %v", x, y, got)
			}
		}
	}
}

func TestFloatCmpNaN(t *testing.T) {
	nan := NaN()
	assert.Equal(t, 0, nan.Cmp(nan))
	for _, x := range ordered {
		assert.Equal(t, -1, nan.Cmp(x), "NaN.Cmp(%v)", x)
		assert.Equal(t, 1, x.Cmp(nan), "%v.Cmp(NaN)", x)
		assert.False(t, x.Equal(nan))
		assert.False(t, nan.Equal(x))
		assert.False(t, x.Less(nan))
		assert.False(t, nan.Less(x))
		assert.False(t, x.LessEq(nan))
		assert.False(t, x.Greater(nan))
		assert.False(t, x.GreaterEq(nan))
	}
	assert.False(t, nan.Equal(nan))

	// Cmp is a total order usable for sorting
	s := append([]Float{nan}, ordered...)
	slices.Reverse(s)
	slices.SortFunc(s, Float.Cmp)
	assert.True(t, s[0].IsNaN())
	for i := range ordered {
		assert.True(t, alike(s[i+1], ordered[i]), "s[%d] = %v; want %v", i+1, s[i+1], ordered[i])
	}
}

func TestFloatCmpAbs(t *testing.T) {
	assert.Equal(t, 0, New(-3, 4).CmpAbs(New(3, 4)))
	assert.Equal(t, 1, New(-3, 5).CmpAbs(New(3, 4)))
	assert.Equal(t, -1, Zero().CmpAbs(New(-1, -1000)))
	assert.Equal(t, 1, Inf(-1).CmpAbs(MustParse("1e1e100")))
	assert.Equal(t, 0, Inf(-1).CmpAbs(Inf(1)))
	assert.Equal(t, 0, NaN().CmpAbs(New(1, 0)))
}

func TestMinMax(t *testing.T) {
	a, b := New(1, 3), New(-2, 5)
	assert.True(t, alike(Min(a, b), b))
	assert.True(t, alike(Min(b, a), b))
	assert.True(t, alike(Max(a, b), a))
	assert.True(t, alike(Max(b, a), a))
	assert.True(t, alike(Max(a, Inf(1)), Inf(1)))
	assert.True(t, Min(a, NaN()).IsNaN())
	assert.True(t, Max(NaN(), a).IsNaN())
}

func TestFloatSignum(t *testing.T) {
	for _, test := range []struct {
		x    Float
		want Float
	}{
		{New(-3, 400), New(-1, 0)},
		{MustParse("1e-1e100"), New(1, 0)},
		{Zero(), Zero()},
		{Inf(1), New(1, 0)},
		{NaN(), NaN()},
	} {
		if got := test.x.Signum(); !alike(got, test.want) {
			t.Errorf("%v.Signum() = %v; want %v", test.x, got, test.want)
		}
	}
}
