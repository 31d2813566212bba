package numfmt

import (
	"math"
	"strings"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/context"
)

// Format returns the text of v.
func (f *Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return f.posPrefix + f.sym.NaN + f.posSuffix
	case math.IsInf(v, 0):
		return f.formatInf(v < 0)
	}
	return f.FormatDecimal(new(decimal.Decimal).SetFloat64Shortest(v))
}

// FormatInt64 returns the text of v.
func (f *Formatter) FormatInt64(v int64) string {
	return f.FormatDecimal(new(decimal.Decimal).SetInt64(v))
}

func (f *Formatter) formatInf(neg bool) string {
	if neg != (f.multiplier < 0) {
		return f.NegativePrefix() + f.sym.Infinity + f.NegativeSuffix()
	}
	return f.posPrefix + f.sym.Infinity + f.posSuffix
}

// FormatDecimal returns the text of x. x is not modified.
func (f *Formatter) FormatDecimal(x *decimal.Decimal) string {
	if x.IsInf() {
		return f.formatInf(x.Signbit())
	}
	v := f.round(x)

	var b strings.Builder
	neg := v.Sign() < 0
	if neg {
		b.WriteString(f.NegativePrefix())
	} else {
		b.WriteString(f.posPrefix)
	}
	f.appendNumber(&b, v)
	if neg {
		b.WriteString(f.NegativeSuffix())
	} else {
		b.WriteString(f.posSuffix)
	}
	return b.String()
}

// round applies the multiplier, the rounding increment and the maximum
// fraction digits to x.
func (f *Formatter) round(x *decimal.Decimal) *decimal.Decimal {
	v := new(decimal.Decimal).Copy(x).SetMode(f.mode)
	if f.multiplier != 1 {
		m := new(decimal.Decimal).SetInt64(f.multiplier)
		// exact product
		ctx := context.New(x.MinPrec()+m.MinPrec(), f.mode)
		ctx.Mul(v, x, m)
	}
	if f.increment != nil {
		v.RoundToMultiple(v, f.increment)
	}
	return v.Quantize(v, f.maxFrac)
}

// appendNumber writes the digits of |v|, which must be finite and have at most
// f.maxFrac fraction digits, to b.
func (f *Formatter) appendNumber(b *strings.Builder, v *decimal.Decimal) {
	s := v.Text('f', -1)
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")

	// integer digits bounds
	if len(intPart) > f.maxInt {
		intPart = intPart[len(intPart)-f.maxInt:]
	}
	if n := f.minInt - len(intPart); n > 0 {
		intPart = strings.Repeat("0", n) + intPart
	}
	if n := f.minFrac - len(frac); n > 0 {
		frac += strings.Repeat("0", n)
	}
	if intPart == "" && frac == "" {
		intPart = "0"
	}

	f.appendGrouped(b, intPart)
	if frac != "" || f.showPoint {
		b.WriteString(f.sym.Decimal)
	}
	f.appendDigits(b, frac)
}

// appendGrouped writes the integer digits in s to b, inserting grouping
// separators if grouping is used.
func (f *Formatter) appendGrouped(b *strings.Builder, s string) {
	if !f.grouping || f.groupSize <= 0 || len(s) <= f.groupSize {
		f.appendDigits(b, s)
		return
	}
	// split s into groups, starting from the right
	var groups []string
	end := len(s)
	size := f.groupSize
	for end > size {
		groups = append(groups, s[end-size:end])
		end -= size
		size = f.secondary()
	}
	groups = append(groups, s[:end])
	for i := len(groups) - 1; i >= 0; i-- {
		f.appendDigits(b, groups[i])
		if i > 0 {
			b.WriteString(f.sym.Group)
		}
	}
}

// appendDigits writes the ASCII digits in s to b using f's zero digit.
func (f *Formatter) appendDigits(b *strings.Builder, s string) {
	if f.sym.Zero == '0' {
		b.WriteString(s)
		return
	}
	for i := 0; i < len(s); i++ {
		b.WriteRune(f.sym.Zero + rune(s[i]-'0'))
	}
}
