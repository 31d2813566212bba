package decimal

import (
	"fmt"
	"io"
	"strings"
)

var decimalZero Decimal

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by Parse, with base argument 0. The entire string (not just a prefix) must
// be valid for success. If the operation failed, the value of z is undefined
// but the returned value is nil.
func (z *Decimal) SetString(s string) (*Decimal, bool) {
	if f, _, err := z.Parse(s, 0); err == nil {
		return f, true
	}
	return nil, false
}

// scan is like Parse but reads the longest possible prefix representing a valid
// floating point number from an io.ByteScanner rather than a string. It serves
// as the implementation of Parse. It does not recognize ±Inf and does not expect
// EOF at the end.
func (z *Decimal) scan(r io.ByteScanner, base int) (f *Decimal, b int, err error) {
	if base != 0 && base != 10 {
		panic(fmt.Sprintf("invalid number base %d", base))
	}
	// A reasonable value in case of an error.
	z.form = zero

	// sign
	z.neg, err = scanSign(r)
	if err != nil {
		return nil, 10, err
	}

	// mantissa
	var fcount int64 // fractional digit count; valid if <= 0
	var digits []byte
	digits, fcount, err = scanMant(r, base == 0)
	if err != nil {
		return nil, 10, err
	}

	// exponent
	var exp int64
	exp, err = scanExponent(r, base == 0)
	if err != nil {
		return nil, 10, err
	}

	if len(digits) == 0 {
		// the mantissa was all zeros
		z.acc = Exact
		z.form = zero
		f = z
		return f, 10, nil
	}
	// len(digits) > 0

	z.mant.SetString(string(digits), 10)
	e := exp + fcount + int64(trimZeros(&z.mant))
	if z.prec == 0 {
		z.prec = uint32(decDigits(&z.mant))
	}
	z.acc = Exact
	z.form = finite
	z.norm(e)
	return z, 10, nil
}

// scanMant reads the digits of a mantissa, with an optional decimal point,
// from r. It returns the significant digits (without leading zeros) and the
// exponent adjustment for the digits read after the decimal point.
func scanMant(r io.ByteScanner, sepOk bool) (digits []byte, fcount int64, err error) {
	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false
	dp := int64(-1) // position of decimal point
	count := int64(0)

	// one char look-ahead
	ch, err := r.ReadByte()
loop:
	for err == nil {
		switch {
		case ch == '.' && dp < 0:
			dp = count
			prev = '.'
		case ch == '_' && sepOk:
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		case '0' <= ch && ch <= '9':
			if ch != '0' || len(digits) > 0 {
				digits = append(digits, ch)
			}
			count++
			prev = '0'
		default:
			_ = r.UnreadByte() // ch does not belong to number anymore
			break loop
		}
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}

	if err == nil && count == 0 {
		err = errNoDigits
	}
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}
	if dp >= 0 {
		fcount = dp - count
	}
	return digits, fcount, err
}

// Parse parses s which must contain a text representation of a decimal
// floating-point number, or a string representing an infinite value.
//
// For base 0, an underscore character ``_'' may appear between successive
// digits; such underscores do not change the value of the number. Incorrect
// placement of underscores is reported as an error if there are no other
// errors. If base != 0, underscores are not recognized and thus terminate
// scanning like any other character that is not a valid decimal point or
// digit.
//
// It sets z to the (possibly rounded) value of the corresponding decimal
// value, and returns z, the actual base b, and an error err, if any. The
// entire string (not just a prefix) must be consumed for success. If z's
// precision is 0, it is changed to the number of significant digits of the
// mantissa before rounding takes effect. The number must be of the form:
//
//	number    = [ sign ] ( float | "inf" | "Inf" ) .
//	sign      = "+" | "-" .
//	float     = mantissa [ exponent ] .
//	mantissa  = digits "." [ digits ] | digits | "." digits .
//	exponent  = ( "e" | "E" ) [ sign ] digits .
//	digits    = digit { [ "_" ] digit } .
//	digit     = "0" ... "9" .
//
// The base argument must be 0 or 10. Providing an invalid base argument will
// lead to a run-time panic.
//
// The returned *Decimal f is nil and the value of z is valid but not defined if
// an error is reported.
func (z *Decimal) Parse(s string, base int) (f *Decimal, b int, err error) {
	// scan doesn't handle ±Inf
	if len(s) == 3 && (s == "Inf" || s == "inf") {
		f = z.SetInf(false)
		return f, 10, nil
	}
	if len(s) == 4 && (s[0] == '+' || s[0] == '-') && (s[1:] == "Inf" || s[1:] == "inf") {
		f = z.SetInf(s[0] == '-')
		return f, 10, nil
	}

	r := strings.NewReader(s)
	if f, b, err = z.scan(r, base); err != nil {
		return nil, b, err
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		err = fmt.Errorf("expected end of string, found %q", ch)
	} else if err2 != io.EOF {
		err = err2
	}
	if err != nil {
		f = nil
	}

	return
}

// ParseDecimal is like f.Parse(s, base) with f set to the given precision
// and rounding mode.
func ParseDecimal(s string, base int, prec uint, mode RoundingMode) (f *Decimal, b int, err error) {
	return new(Decimal).SetPrec(prec).SetMode(mode).Parse(s, base)
}

var _ fmt.Scanner = &decimalZero // *Decimal must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts formats whose verbs are supported by
// fmt.Scan for floating point values, which are:
// 'e', 'E', 'f', 'F', 'g' and 'G'.
// Scan doesn't handle ±Inf.
func (z *Decimal) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, _, err := z.scan(byteReader{s}, 0)
	return err
}
