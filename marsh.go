// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package toobig

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// Value kinds in the gob encoding.
const (
	gobZero byte = iota
	gobSmall
	gobLarge
	gobInf
	gobNaN
	gobNeg = 0x80 // sign bit, or'ed with the kind
)

// GobEncode implements the gob.GobEncoder interface.
func (x Float) GobEncode() ([]byte, error) {
	return x.appendGob(append(make([]byte, 0, 18), floatGobVersion)), nil
}

// appendGob appends the kind, mantissa and exponent of x to buf. Escalated
// exponents are encoded recursively, without version byte.
func (x Float) appendGob(buf []byte) []byte {
	var kind byte
	switch {
	case x.IsNaN():
		return append(buf, gobNaN)
	case x.IsInf():
		kind = gobInf
	case x.IsZero():
		kind = gobZero
	case x.exp.large != nil:
		kind = gobLarge
	default:
		kind = gobSmall
	}
	if x.mant < 0 {
		kind |= gobNeg
	}
	buf = append(buf, kind)
	switch kind &^ gobNeg {
	case gobSmall:
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(x.mant))
		buf = binary.BigEndian.AppendUint64(buf, uint64(x.exp.small))
	case gobLarge:
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(x.mant))
		buf = x.exp.large.appendGob(buf)
	}
	return buf
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if buf[0] != floatGobVersion {
		return Error.New("Float.GobDecode: encoding version %d not supported", buf[0])
	}
	r := bytes.NewReader(buf[1:])
	f, err := decodeGob(r, 0)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return Error.New("Float.GobDecode: %d trailing bytes", r.Len())
	}
	*z = f
	return nil
}

func decodeGob(r *bytes.Reader, depth int) (Float, error) {
	if depth > maxNesting {
		return Float{}, Error.New("Float.GobDecode: exponent nesting too deep")
	}
	kind, err := r.ReadByte()
	if err != nil {
		return Float{}, Error.New("Float.GobDecode: truncated input")
	}
	s := 1
	if kind&gobNeg != 0 {
		s = -1
	}
	switch kind &^ gobNeg {
	case gobZero:
		return Float{}, nil
	case gobNaN:
		return NaN(), nil
	case gobInf:
		return Inf(s), nil
	case gobSmall, gobLarge:
	default:
		return Float{}, Error.New("Float.GobDecode: invalid kind %#x", kind)
	}

	var bits uint64
	if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
		return Float{}, Error.New("Float.GobDecode: truncated mantissa")
	}
	m := math.Float64frombits(bits)
	if kind&^gobNeg == gobSmall {
		var e int64
		if err := binary.Read(r, binary.BigEndian, &e); err != nil {
			return Float{}, Error.New("Float.GobDecode: truncated exponent")
		}
		return New(m, e), nil
	}
	e, err := decodeGob(r, depth+1)
	if err != nil {
		return Float{}, err
	}
	if !e.IsFinite() {
		return Float{}, Error.New("Float.GobDecode: non-finite exponent %s", e)
	}
	return NewExp(m, LargeExp(e)), nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled in the format produced by String, which Parse reads back exactly.
func (x Float) MarshalText() (text []byte, err error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Float) UnmarshalText(text []byte) error {
	f, err := Parse(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *toobig.Float: %w", text, err)
	}
	*z = f
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Floats are encoded as
// JSON strings since neither nested exponents nor special values are valid
// JSON numbers.
func (x Float) MarshalJSON() ([]byte, error) {
	buf := append(make([]byte, 0, 26), '"')
	buf = x.Append(buf, 'g', -1)
	return append(buf, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// string in any format accepted by Parse, or a plain JSON number.
func (z *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return Error.New("cannot unmarshal null into a *toobig.Float")
	}
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	return z.UnmarshalText(data)
}
