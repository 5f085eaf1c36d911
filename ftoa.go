// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float-to-string conversion functions.

package toobig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range of exponents for which the 'g' format produces a plain decimal
// number instead of scientific notation.
const (
	PlainExpMin = -4
	PlainExpMax = 6
)

// Text converts the floating-point number x to a string according to the
// given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±d, always in scientific notation
//	'g'	like 'e' for exponents outside [PlainExpMin, PlainExpMax], -ddddd.dddd otherwise
//
// The precision prec controls the number of digits after the decimal point of
// the mantissa. The special precision -1 uses the smallest number of digits
// necessary such that Parse will return x exactly.
//
// Escalated exponents are always written in full with the 'g' format, which
// yields nested scientific notation such as "1e1e100".
//
// Special values are written as "nan", "inf" and "-inf", zero as "0".
// An invalid format is treated as 'g'.
func (x Float) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 24), format, prec))
}

// String formats x like x.Text('g', -1).
func (x Float) String() string {
	return x.Text('g', -1)
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x Float) Append(buf []byte, format byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "nan"...)
	case x.IsInf():
		if x.mant < 0 {
			return append(buf, "-inf"...)
		}
		return append(buf, "inf"...)
	case x.IsZero():
		return append(buf, '0')
	}

	if x.mant < 0 {
		buf = append(buf, '-')
	}

	// Rounding to prec digits may carry into the exponent (9.99 -> 1.0e+01).
	s := strconv.FormatFloat(math.Abs(x.mant), 'e', prec, 64)
	i := strings.IndexByte(s, 'e')
	mant := s[:i]
	exp := x.exp
	if carry, _ := strconv.Atoi(s[i+1:]); carry != 0 {
		exp = exp.add(Exponent{small: int64(carry)})
	}

	if e, ok := exp.Int64(); ok && format != 'e' && PlainExpMin <= e && e <= PlainExpMax {
		return appendPlain(buf, mant, int(e))
	}
	buf = append(buf, mant...)
	buf = append(buf, 'e')
	if exp.large != nil {
		return exp.large.Append(buf, 'g', -1)
	}
	return strconv.AppendInt(buf, exp.small, 10)
}

// appendPlain appends the mantissa mant (of the form d[.ddd]) scaled by 10**e
// as a plain decimal number, by moving the decimal point.
func appendPlain(buf []byte, mant string, e int) []byte {
	digits := strings.Replace(mant, ".", "", 1)
	switch {
	case e < 0:
		buf = append(buf, '0', '.')
		for i := 0; i < -e-1; i++ {
			buf = append(buf, '0')
		}
		return append(buf, digits...)
	case len(digits) <= e+1:
		buf = append(buf, digits...)
		for i := len(digits); i < e+1; i++ {
			buf = append(buf, '0')
		}
		return buf
	}
	buf = append(buf, digits[:e+1]...)
	buf = append(buf, '.')
	return append(buf, digits[e+1:]...)
}

var _ fmt.Formatter = Float{}

// Format implements fmt.Formatter. It accepts the formats 'e', 'E', 'g', 'G',
// 's' and 'v'. The precision, if any, is the number of mantissa digits after
// the decimal point. The '+' flag forces a sign on non-negative values and the
// '-' flag left-justifies within the field width.
func (x Float) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = -1
	}

	var f byte
	switch format {
	case 'e', 'E':
		f = 'e'
	case 'g', 'G', 's', 'v':
		f = 'g'
	default:
		fmt.Fprintf(s, "%%!%c(toobig.Float=%s)", format, x.String())
		return
	}

	var buf []byte
	if s.Flag('+') && !x.IsNaN() && x.mant >= 0 {
		buf = append(buf, '+')
	}
	buf = x.Append(buf, f, prec)
	if format == 'E' || format == 'G' {
		buf = []byte(strings.ToUpper(string(buf)))
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(buf) {
		padding = width - len(buf)
	}
	pad := []byte(strings.Repeat(" ", padding))
	if s.Flag('-') {
		s.Write(buf)
		s.Write(pad)
		return
	}
	s.Write(pad)
	s.Write(buf)
}
