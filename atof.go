// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float conversion functions.

package toobig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxNesting is the maximum depth of nested exponents accepted by Parse.
const maxNesting = 16

// Parse parses s which must contain a text representation of a Float, or a
// string representing an infinite value or NaN. Leading and trailing white
// space is ignored; the rest of the string must be consumed for success.
//
// The number must be of the form:
//
//	number   = [ sign ] ( special | float ) .
//	sign     = "+" | "-" .
//	special  = "inf" | "infinity" | "nan" | "∞" .
//	float    = mantissa [ exponent ] .
//	exponent = ( "e" | "E" ) [ sign ] mantissa [ exponent ] .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	digits   = digit { digit } .
//	digit    = "0" ... "9" .
//
// Special values are case insensitive.
//
// Exponents nest: the exponent of "1.23e4.56e78" is the number 4.56e78, not
// 4.56 followed by another exponent. This is the textual form of an escalated
// Exponent. The exponent need not be an integer: the fractional part of the
// exponent is folded into the mantissa, so "1e0.5" is √10.
//
// The mantissa may have any number of digits; digits beyond float64
// precision are rounded.
//
// The returned error, if any, is a *NumError wrapped in the Error class.
func Parse(s string) (Float, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Float{}, syntaxError(s, 0, errEmpty)
	}
	if f, ok := parseSpecial(t); ok {
		return f, nil
	}
	p := parser{s: t}
	f, err := p.number(0)
	if err != nil {
		return Float{}, err
	}
	if p.pos < len(t) {
		return Float{}, syntaxError(t, p.pos, errTrailing)
	}
	return f, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Float {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by Parse. If the operation failed, the value of z is unchanged but the
// returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	f, err := Parse(s)
	if err != nil {
		return nil, false
	}
	*z = f
	return z, true
}

var _ fmt.Scanner = (*Float)(nil) // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the formats accepted by Parse and ignores the
// verb.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, isNumberRune)
	if err != nil {
		return err
	}
	f, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*z = f
	return nil
}

func isNumberRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return true
	case r == '+' || r == '-' || r == '.' || r == '∞':
		return true
	}
	return strings.ContainsRune("eEinfINFaAtTyY", r)
}

func parseSpecial(s string) (Float, bool) {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "inf", "infinity", "∞":
		if neg {
			return Inf(-1), true
		}
		return Inf(1), true
	case "nan":
		return NaN(), true
	}
	return Float{}, false
}

// parser is a recursive descent parser for the float production.
type parser struct {
	s   string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos < len(p.s) {
		return p.s[p.pos], true
	}
	return 0, false
}

// A term is a scanned [sign] mantissa [exponent] production.
type term struct {
	neg    bool
	digits string   // significant digits, empty if zero
	exp10  int64    // base 10 exponent of the first digit
	nested bool     // whether an exponent was present
	exp    Exponent // integral part of the exponent
	frac   float64  // fractional part of the exponent
}

func (p *parser) number(depth int) (Float, error) {
	t, err := p.term(depth)
	if err != nil {
		return Float{}, err
	}
	return t.float(), nil
}

func (p *parser) term(depth int) (t term, err error) {
	if depth > maxNesting {
		return t, syntaxError(p.s, p.pos, errNestLimit)
	}
	if ch, ok := p.peek(); ok && (ch == '+' || ch == '-') {
		t.neg = ch == '-'
		p.pos++
	}
	if t.digits, t.exp10, err = p.mantissa(); err != nil {
		return t, err
	}
	if ch, ok := p.peek(); ok && (ch == 'e' || ch == 'E') {
		p.pos++
		start := p.pos
		e, err := p.term(depth + 1)
		if err != nil {
			if ne := (*NumError)(nil); errors.As(err, &ne) && ne.Err == errNoDigits {
				return t, syntaxError(p.s, start, errExponent)
			}
			return t, err
		}
		t.nested = true
		t.exp, t.frac = e.split()
	}
	return t, nil
}

// float returns the value of t.
func (t *term) float() Float {
	if t.digits == "" {
		return Float{}
	}
	m, err := strconv.ParseFloat(t.digits[:1]+"."+t.digits[1:], 64)
	if err != nil {
		// cannot happen: digits contains only decimal digits
		panic(err)
	}
	if t.neg {
		m = -m
	}
	if t.frac != 0 {
		m *= math.Pow(10, t.frac)
	}
	return NewExp(m, SmallExp(t.exp10).add(t.exp))
}

// split returns the integral and fractional parts of t, for use as an
// exponent. Integers that fit an int64 are converted exactly.
func (t *term) split() (Exponent, float64) {
	if t.digits == "" {
		return Exponent{}, 0
	}
	if n := int64(len(t.digits)); !t.nested && t.exp10 >= n-1 && t.exp10 < 19 {
		s := t.digits + strings.Repeat("0", int(t.exp10-(n-1)))
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			if t.neg {
				i = -i
			}
			return SmallExp(i), 0
		}
	}
	f := t.float()
	if ef, ok := f.Float64Checked(); ok && math.Abs(ef) < 1<<53 {
		i, frac := math.Modf(ef)
		return SmallExp(int64(i)), frac
	}
	// beyond 2**53, float64 values are integers; below float64 range, the
	// exponent is 0.
	return LargeExp(f), 0
}

// mantissa scans the mantissa production and returns its significant digits,
// without leading or trailing zeros, and the base 10 exponent of the first
// significant digit. digits is empty if all digits are zeros.
func (p *parser) mantissa() (digits string, exp10 int64, err error) {
	var (
		start = p.pos
		sig   []byte
		n     int     // digits seen
		point = -1    // number of digits before the decimal point
		lead  = -1    // index of the first non-zero digit
		trail = 0     // trailing zeros in sig
	)
loop:
	for ; p.pos < len(p.s); p.pos++ {
		switch ch := p.s[p.pos]; {
		case '0' <= ch && ch <= '9':
			if ch != '0' && lead < 0 {
				lead = n
			}
			if lead >= 0 {
				sig = append(sig, ch)
				if ch == '0' {
					trail++
				} else {
					trail = 0
				}
			}
			n++
		case ch == '.':
			if point >= 0 {
				return "", 0, syntaxError(p.s, p.pos, errPoints)
			}
			point = n
		default:
			break loop
		}
	}
	if n == 0 {
		return "", 0, syntaxError(p.s, start, errNoDigits)
	}
	if lead < 0 {
		return "", 0, nil
	}
	if point < 0 {
		point = n
	}
	return string(sig[:len(sig)-trail]), int64(point - 1 - lead), nil
}
