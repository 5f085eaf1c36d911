// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toobig

import (
	"errors"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the error class of all errors returned by this package.
var Error = errs.Class("toobig")

// ErrSyntax indicates that a value does not have the right syntax for a Float.
var ErrSyntax = errors.New("invalid syntax")

// scan errors
var (
	errEmpty     = errors.New("empty input")
	errNoDigits  = errors.New("number has no digits")
	errPoints    = errors.New("multiple decimal points")
	errExponent  = errors.New("malformed exponent")
	errTrailing  = errors.New("unexpected trailing characters")
	errNestLimit = errors.New("exponent nesting too deep")
)

// A NumError records a failed conversion from text.
//
// errors.Is(err, ErrSyntax) reports true for any *NumError.
type NumError struct {
	Num    string // the input
	Offset int    // byte offset of the error in Num
	Err    error  // the reason the conversion failed
}

func (e *NumError) Error() string {
	return "parsing " + strconv.Quote(e.Num) + ": " + ErrSyntax.Error() + ": " + e.Err.Error() +
		" at offset " + strconv.Itoa(e.Offset)
}

// Unwrap returns ErrSyntax and the reason of the failure.
func (e *NumError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

func syntaxError(s string, offset int, reason error) error {
	return Error.Wrap(&NumError{Num: s, Offset: offset, Err: reason})
}

// An ErrNaN is reported by an operation context when an operation produces a
// NaN from non-NaN operands. Operations on Float values themselves never fail:
// they return NaN. An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}
