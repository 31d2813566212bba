// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion functions.
// It is closely following the corresponding implementation
// in strconv/ftoa.go and math/big/ftoa.go, but modified and
// simplified for Decimal: the mantissa is already a sequence
// of decimal digits, so no binary-to-decimal conversion takes
// place and all rounding happens in the Decimal's rounding mode.

package decimal

import (
	"fmt"
	"strconv"
)

// Text converts the decimal floating-point number x to a string according
// to the given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//
// For the formats 'e', 'E', 'f', 'g' and 'G', the precision prec is the number
// of digits after the decimal point for 'e', 'E' and 'f', or the maximum
// number of significant digits for 'g' and 'G'. A negative precision selects
// the smallest number of decimal digits necessary to represent the value x
// exactly. Rounding to prec digits uses x's rounding mode.
//
// If format is a different character, Text returns a "%" followed by the
// unrecognized format character.
func (x *Decimal) Text(format byte, prec int) string {
	cap := 10
	if prec > 0 {
		cap += prec
	}
	return string(x.Append(make([]byte, 0, cap), format, prec))
}

// String formats x like x.Text('g', 10).
// (String must be called explicitly, Decimal.Format does not support %s verb.)
func (x *Decimal) String() string {
	return x.Text('g', 10)
}

// Append appends to buf the string form of the decimal floating-point number x,
// as generated by x.Text, and returns the extended buffer.
func (x *Decimal) Append(buf []byte, fmt byte, prec int) []byte {
	// sign
	if x.neg {
		buf = append(buf, '-')
	}

	// Inf
	if x.form == inf {
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	}

	switch fmt {
	case 'e', 'E', 'f', 'g', 'G':
		// ok
	default:
		if x.neg {
			buf = buf[:len(buf)-1] // sign was added prematurely - remove it again
		}
		return append(buf, '%', fmt)
	}

	// 1) convert Decimal to decimal digits
	var d digits
	if x.form == finite {
		// x != 0
		d.mant = x.mant.Append(d.mant, 10)
		d.exp = int(x.exp)
	}

	// 2) round to desired precision
	shortest := false
	if prec < 0 {
		shortest = true
		// Precision for shortest representation mode.
		switch fmt {
		case 'e', 'E':
			prec = len(d.mant) - 1
		case 'f':
			prec = max(len(d.mant)-d.exp, 0)
		case 'g', 'G':
			prec = len(d.mant)
		}
	} else {
		// round appropriately
		switch fmt {
		case 'e', 'E':
			// one digit before and number of digits after decimal point
			d.round(1+prec, x.mode, x.neg)
		case 'f':
			// number of digits before and after decimal point
			d.round(d.exp+prec, x.mode, x.neg)
		case 'g', 'G':
			if prec == 0 {
				prec = 1
			}
			d.round(prec, x.mode, x.neg)
		}
	}

	// 3) read digits out and format
	switch fmt {
	case 'e', 'E':
		return fmtE(buf, fmt, prec, d)
	case 'f':
		return fmtF(buf, prec, d)
	case 'g', 'G':
		// trim trailing fractional zeros in %e format
		eprec := prec
		if eprec > len(d.mant) && len(d.mant) >= d.exp {
			eprec = len(d.mant)
		}
		// %e is used if the exponent from the conversion
		// is less than -4 or greater than or equal to the precision.
		// If precision was the shortest possible, use eprec = 6 for
		// this decision.
		if shortest {
			eprec = 6
		}
		exp := d.exp - 1
		if exp < -4 || exp >= eprec {
			if prec > len(d.mant) {
				prec = len(d.mant)
			}
			return fmtE(buf, fmt+'e'-'g', prec-1, d)
		}
		if prec > d.exp {
			prec = len(d.mant)
		}
		return fmtF(buf, max(prec-d.exp, 0), d)
	}

	panic("unreachable")
}

// digits represents the value 0.mant × 10**exp, where mant is a sequence
// of ASCII decimal digits without trailing zeros. An empty mant is 0.
type digits struct {
	mant []byte
	exp  int
}

// at returns the i'th mantissa digit, starting with the first digit.
func (d *digits) at(i int) byte {
	if 0 <= i && i < len(d.mant) {
		return d.mant[i]
	}
	return '0'
}

// round sets d to (at most) n mantissa digits by rounding it according to
// mode. n may be negative, in which case all digits are below the rounding
// digit.
func (d *digits) round(n int, mode RoundingMode, neg bool) {
	if n >= len(d.mant) {
		return // nothing to do
	}
	var r uint
	sticky := true
	if n >= 0 {
		r = uint(d.mant[n] - '0')
		// there are no trailing zeros, so any digit after n is significant
		sticky = n+1 < len(d.mant)
	}
	odd := n > 0 && (d.mant[n-1]-'0')&1 != 0
	if !mode.inc(neg, odd, half(r, sticky)) {
		if n <= 0 {
			d.mant = d.mant[:0]
			d.exp = 0
			return
		}
		d.mant = trim(d.mant[:n])
		if len(d.mant) == 0 {
			d.exp = 0
		}
		return
	}
	if n <= 0 {
		// the result is one unit in the last kept place
		d.exp -= n - 1
		d.mant = append(d.mant[:0], '1')
		return
	}
	// find first digit < '9'
	i := n - 1
	for i >= 0 && d.mant[i] == '9' {
		i--
	}
	if i < 0 {
		// all digits are '9's
		d.mant[0] = '1'
		d.mant = d.mant[:1]
		d.exp++
		return
	}
	d.mant[i]++
	d.mant = d.mant[:i+1]
}

// trim cuts off any trailing zeros from x.
func trim(x []byte) []byte {
	i := len(x)
	for i > 0 && x[i-1] == '0' {
		i--
	}
	return x[:i]
}

// %e: d.ddddde±dd
func fmtE(buf []byte, fmt byte, prec int, d digits) []byte {
	// first digit
	ch := byte('0')
	if len(d.mant) > 0 {
		ch = d.mant[0]
	}
	buf = append(buf, ch)

	// .moredigits
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(d.mant), prec+1)
		if i < m {
			buf = append(buf, d.mant[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	// e±
	buf = append(buf, fmt)
	var exp int64
	if len(d.mant) > 0 {
		exp = int64(d.exp) - 1 // -1 because first digit was printed before '.'
	}
	if exp < 0 {
		ch = '-'
		exp = -exp
	} else {
		ch = '+'
	}
	buf = append(buf, ch)

	// dd...d
	if exp < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, exp, 10)
}

// %f: ddddddd.ddddd
func fmtF(buf []byte, prec int, d digits) []byte {
	// integer, padded with zeros as needed
	if d.exp > 0 {
		m := min(len(d.mant), d.exp)
		buf = append(buf, d.mant[:m]...)
		for ; m < d.exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	// fraction
	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			buf = append(buf, d.at(d.exp+i))
		}
	}

	return buf
}

var _ fmt.Formatter = (*Decimal)(nil) // *Decimal must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts all the regular
// formats for floating-point numbers ('e', 'E', 'f', 'F', 'g',
// 'G') as well as 'v'. See (*Decimal).Text for the interpretation
// of 'prec'. The 'v' format is handled like 'g'.
// Format also supports the output field width, as well as the
// format flags '+' and ' ' for sign control, '0' for space or
// zero padding, and '-' for left or right justification. See
// the fmt package for details.
func (x *Decimal) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch format {
	case 'e', 'E', 'f':
		// nothing to do
	case 'F':
		// (*Decimal).Text doesn't support 'F'; handle like 'f'
		format = 'f'
	case 'v':
		// handle like 'g'
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(*decimal.Decimal=%s)", format, x.String())
		return
	}
	var buf []byte
	if x == nil {
		buf = []byte("<nil>")
	} else {
		buf = x.Append(buf, byte(format), prec)
	}

	// determine sign
	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		if s.Flag(' ') {
			sign = " "
		}
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x != nil && !x.IsInf():
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
