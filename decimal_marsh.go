// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package decimal

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Decimal value and all its attributes (precision,
// rounding mode, accuracy) are marshaled.
func (x *Decimal) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + mode|acc|form|neg (3+2+2+1bit) + prec
	var mant []byte
	if x.form == finite {
		mant = x.mant.Bytes()
		sz += 4 + len(mant) // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = decimalGobVersion
	b := byte(x.mode&7)<<5 | byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[6:], uint32(x.exp))
		copy(buf[10:], mant)
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is rounded per the precision and rounding mode of
// z unless z's precision is 0, in which case z is set exactly
// to the decoded value.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Decimal{}
		return nil
	}
	if len(buf) < 6 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}

	if buf[0] != decimalGobVersion {
		return fmt.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}

	oldPrec := z.prec
	oldMode := z.mode

	b := buf[1]
	z.mode = RoundingMode((b >> 5) & 7)
	z.acc = Accuracy((b>>3)&3) - 1
	z.form = form((b >> 1) & 3)
	z.neg = b&1 != 0
	z.prec = binary.BigEndian.Uint32(buf[2:])

	if z.form == finite {
		if len(buf) < 11 {
			return errors.New("Decimal.GobDecode: buffer too small for finite form decimal")
		}
		z.exp = int32(binary.BigEndian.Uint32(buf[6:]))
		z.mant.SetBytes(buf[10:])
		if z.mant.Sign() == 0 || trimZeros(&z.mant) != 0 {
			return errors.New("Decimal.GobDecode: invalid mantissa")
		}
		z.dig = uint32(decDigits(&z.mant))
	}
	if z.mode > ToNearestZero || z.form > inf {
		return fmt.Errorf("Decimal.GobDecode: invalid flags %#02x", b)
	}

	if oldPrec != 0 {
		z.mode = oldMode
		z.SetPrec(uint(oldPrec))
	}

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Decimal value is marshaled (in full precision), other
// attributes such as precision or accuracy are ignored.
func (x *Decimal) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	var buf []byte
	return x.Append(buf, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded per the precision and rounding mode of z.
// If z's precision is 0, it is changed to the number of significant
// digits of text.
func (z *Decimal) UnmarshalText(text []byte) error {
	_, _, err := z.Parse(string(text), 0)
	if err != nil {
		err = fmt.Errorf("decimal: cannot unmarshal %q into a *decimal.Decimal (%v)", text, err)
	}
	return err
}
