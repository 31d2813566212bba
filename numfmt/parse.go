package numfmt

import (
	"math"
	"strings"
	"unicode/utf8"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/context"
)

// Parse parses text formatted by f and returns its exact value, divided by
// the multiplier. The whole text must match one of f's subpatterns. Grouping
// separators are accepted anywhere in the integer part if grouping is used.
// Both localized and ASCII digits are accepted.
//
// Errors are of type *ParseError and wrap ErrSyntax.
func (f *Formatter) Parse(text string) (*decimal.Decimal, error) {
	neg, body, start, err := f.stripAffixes(text)
	if err != nil {
		return nil, err
	}
	if body == f.sym.Infinity {
		return new(decimal.Decimal).SetInf(neg != (f.multiplier < 0)), nil
	}
	if body == f.sym.NaN {
		return nil, &ParseError{Text: text, Pos: start, Msg: "NaN is not a decimal value"}
	}

	var digits strings.Builder
	if neg {
		digits.WriteByte('-')
	}
	nDigits := 0
	inFraction := false
	for i := 0; i < len(body); {
		switch rest := body[i:]; {
		case !inFraction && strings.HasPrefix(rest, f.sym.Decimal):
			inFraction = true
			digits.WriteByte('.')
			i += len(f.sym.Decimal)
			continue
		case !inFraction && f.grouping && strings.HasPrefix(rest, f.sym.Group):
			if nDigits == 0 {
				return nil, &ParseError{Text: text, Pos: start + i, Msg: "grouping separator before first digit"}
			}
			i += len(f.sym.Group)
			continue
		}
		r, size := utf8.DecodeRuneInString(body[i:])
		d, ok := f.sym.digit(r)
		if !ok {
			return nil, &ParseError{Text: text, Pos: start + i, Msg: "unexpected character " + string(r)}
		}
		digits.WriteByte(byte('0' + d))
		nDigits++
		i += size
	}
	if nDigits == 0 {
		return nil, &ParseError{Text: text, Pos: start, Msg: "no digits"}
	}

	x, _, err := decimal.ParseDecimal(digits.String(), 10, 0, decimal.ToNearestEven)
	if err != nil {
		return nil, &ParseError{Text: text, Pos: start, Msg: err.Error()}
	}
	if f.multiplier != 1 {
		ctx := context.New(decimal.DefaultDecimalPrec, decimal.ToNearestEven)
		ctx.Quo(x, x, ctx.NewInt64(f.multiplier))
		if err := ctx.Err(); err != nil {
			return nil, &ParseError{Text: text, Pos: start, Msg: err.Error()}
		}
	}
	return x, nil
}

// ParseFloat64 is like Parse but returns the float64 nearest to the parsed
// value. The NaN symbol is parsed as math.NaN().
func (f *Formatter) ParseFloat64(text string) (float64, error) {
	if text == f.posPrefix+f.sym.NaN+f.posSuffix {
		return math.NaN(), nil
	}
	x, err := f.Parse(text)
	if err != nil {
		return 0, err
	}
	v, _ := x.Float64()
	return v, nil
}

// stripAffixes removes the positive or negative prefix and suffix from text.
// If both match, the longest match wins and ties go to the positive affixes.
// It returns the body and its offset in text.
func (f *Formatter) stripAffixes(text string) (neg bool, body string, start int, err error) {
	match := func(prefix, suffix string) int {
		if len(text) >= len(prefix)+len(suffix) &&
			strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix) {
			return len(prefix) + len(suffix)
		}
		return -1
	}
	np, ns := f.NegativePrefix(), f.NegativeSuffix()
	pos, negative := match(f.posPrefix, f.posSuffix), match(np, ns)
	switch {
	case pos < 0 && negative < 0:
		return false, "", 0, &ParseError{Text: text, Msg: "prefix or suffix mismatch"}
	case negative > pos:
		return true, text[len(np) : len(text)-len(ns)], len(np), nil
	}
	return false, text[len(f.posPrefix) : len(text)-len(f.posSuffix)], len(f.posPrefix), nil
}
