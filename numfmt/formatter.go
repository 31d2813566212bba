// Package numfmt formats decimal numbers according to patterns such as
// "#,##0.###" and parses formatted text back into numbers.
//
// A Formatter holds the digit bounds, grouping, rounding mode, rounding
// increment, multiplier and affixes described by a pattern, together with the
// localized symbols used to render them. Rounding is performed on the exact
// decimal value of its input with package decimal, so formatting 2.675 with two
// fraction digits under HALF_EVEN yields "2.68" even though the nearest float64
// is slightly below 2.675.
//
// Setters reject values that would break the formatter invariants: they return
// an error wrapping ErrInvalidConfig and leave the formatter unchanged.
package numfmt

import (
	"math"

	decimal "github.com/db47h/decfmt"
)

// DefaultPattern is the pattern of formatters returned by New.
const DefaultPattern = "#,##0.###"

// MaxDigits is the largest accepted value for integer and fraction digit
// bounds.
const MaxDigits = 999

// A Formatter converts numbers to text and back. The zero value is not usable;
// create Formatters with New, NewPattern or NewPatternSymbols.
//
// A Formatter is not safe for concurrent use.
type Formatter struct {
	minInt, maxInt   int
	minFrac, maxFrac int
	mode             decimal.RoundingMode
	grouping         bool
	groupSize        int
	groupSize2       int // secondary grouping size; 0 means same as groupSize
	multiplier       int64
	increment        *decimal.Decimal // nil if no rounding increment
	showPoint        bool
	posPrefix        string
	posSuffix        string
	negPrefix        string
	negSuffix        string
	negExplicit      bool // negative affixes set by pattern or setter
	sym              Symbols
}

// New returns a Formatter for DefaultPattern with the default symbols and
// HALF_EVEN rounding.
func New() *Formatter {
	f, err := NewPattern(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return f
}

// NewPattern returns a Formatter for the given pattern with the default
// symbols and HALF_EVEN rounding.
func NewPattern(pattern string) (*Formatter, error) {
	return NewPatternSymbols(pattern, DefaultSymbols())
}

// NewPatternSymbols returns a Formatter for the given pattern and symbols with
// HALF_EVEN rounding.
func NewPatternSymbols(pattern string, sym Symbols) (*Formatter, error) {
	if err := sym.validate(); err != nil {
		return nil, err
	}
	f := &Formatter{mode: decimal.ToNearestEven, sym: sym}
	if err := f.ApplyPattern(pattern); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone returns an independent copy of f.
func (f *Formatter) Clone() *Formatter {
	c := *f
	if f.increment != nil {
		c.increment = new(decimal.Decimal).Copy(f.increment)
	}
	return &c
}

// Equal reports whether f and g format and parse all values identically.
func (f *Formatter) Equal(g *Formatter) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	if (f.increment == nil) != (g.increment == nil) ||
		f.increment != nil && f.increment.Cmp(g.increment) != 0 {
		return false
	}
	return f.minInt == g.minInt && f.maxInt == g.maxInt &&
		f.minFrac == g.minFrac && f.maxFrac == g.maxFrac &&
		f.mode == g.mode &&
		f.grouping == g.grouping &&
		(!f.grouping || f.groupSize == g.groupSize && f.secondary() == g.secondary()) &&
		f.multiplier == g.multiplier &&
		f.showPoint == g.showPoint &&
		f.posPrefix == g.posPrefix && f.posSuffix == g.posSuffix &&
		f.NegativePrefix() == g.NegativePrefix() && f.NegativeSuffix() == g.NegativeSuffix() &&
		f.sym == g.sym
}

func checkDigits(field string, n int) error {
	if n < 0 || n > MaxDigits {
		return configErr(field, n, "must be in [0, %d]", MaxDigits)
	}
	return nil
}

// MinIntegerDigits returns the minimum number of integer digits.
func (f *Formatter) MinIntegerDigits() int { return f.minInt }

// SetMinIntegerDigits sets the minimum number of integer digits. n must not
// exceed MaxIntegerDigits.
func (f *Formatter) SetMinIntegerDigits(n int) error {
	if err := checkDigits("minimum integer digits", n); err != nil {
		return err
	}
	if n > f.maxInt {
		return configErr("minimum integer digits", n, "greater than maximum integer digits %d", f.maxInt)
	}
	f.minInt = n
	return nil
}

// MaxIntegerDigits returns the maximum number of integer digits. Higher order
// digits are dropped when formatting.
func (f *Formatter) MaxIntegerDigits() int { return f.maxInt }

// SetMaxIntegerDigits sets the maximum number of integer digits. n must be at
// least MinIntegerDigits.
func (f *Formatter) SetMaxIntegerDigits(n int) error {
	if err := checkDigits("maximum integer digits", n); err != nil {
		return err
	}
	if n < f.minInt {
		return configErr("maximum integer digits", n, "less than minimum integer digits %d", f.minInt)
	}
	f.maxInt = n
	return nil
}

// MinFractionDigits returns the minimum number of fraction digits.
func (f *Formatter) MinFractionDigits() int { return f.minFrac }

// SetMinFractionDigits sets the minimum number of fraction digits. n must not
// exceed MaxFractionDigits.
func (f *Formatter) SetMinFractionDigits(n int) error {
	if err := checkDigits("minimum fraction digits", n); err != nil {
		return err
	}
	if n > f.maxFrac {
		return configErr("minimum fraction digits", n, "greater than maximum fraction digits %d", f.maxFrac)
	}
	f.minFrac = n
	return nil
}

// MaxFractionDigits returns the maximum number of fraction digits.
func (f *Formatter) MaxFractionDigits() int { return f.maxFrac }

// SetMaxFractionDigits sets the maximum number of fraction digits. n must be at
// least MinFractionDigits.
func (f *Formatter) SetMaxFractionDigits(n int) error {
	if err := checkDigits("maximum fraction digits", n); err != nil {
		return err
	}
	if n < f.minFrac {
		return configErr("maximum fraction digits", n, "less than minimum fraction digits %d", f.minFrac)
	}
	f.maxFrac = n
	return nil
}

// RoundingMode returns the rounding mode.
func (f *Formatter) RoundingMode() decimal.RoundingMode { return f.mode }

// SetRoundingMode sets the rounding mode.
func (f *Formatter) SetRoundingMode(mode decimal.RoundingMode) error {
	if mode > decimal.ToNearestZero {
		return configErr("rounding mode", mode, "unknown mode")
	}
	f.mode = mode
	return nil
}

// GroupingUsed reports whether integer digits are grouped.
func (f *Formatter) GroupingUsed() bool { return f.grouping }

// SetGroupingUsed enables or disables grouping.
func (f *Formatter) SetGroupingUsed(used bool) { f.grouping = used }

// GroupingSize returns the primary grouping size: the number of digits
// between the grouping separator closest to the decimal separator and the
// decimal separator.
func (f *Formatter) GroupingSize() int { return f.groupSize }

// SetGroupingSize sets the primary grouping size.
func (f *Formatter) SetGroupingSize(n int) error {
	if n < 1 || n > MaxDigits {
		return configErr("grouping size", n, "must be in [1, %d]", MaxDigits)
	}
	f.groupSize = n
	return nil
}

// SecondaryGroupingSize returns the size of the groups beyond the first one,
// or 0 if all groups have the primary size.
func (f *Formatter) SecondaryGroupingSize() int { return f.groupSize2 }

// secondary returns the effective secondary grouping size.
func (f *Formatter) secondary() int {
	if f.groupSize2 == 0 {
		return f.groupSize
	}
	return f.groupSize2
}

// SetSecondaryGroupingSize sets the secondary grouping size. 0 uses the
// primary size for all groups.
func (f *Formatter) SetSecondaryGroupingSize(n int) error {
	if n < 0 || n > MaxDigits {
		return configErr("secondary grouping size", n, "must be in [0, %d]", MaxDigits)
	}
	f.groupSize2 = n
	return nil
}

// Multiplier returns the factor applied to values before formatting and
// removed after parsing.
func (f *Formatter) Multiplier() int64 { return f.multiplier }

// SetMultiplier sets the multiplier.
func (f *Formatter) SetMultiplier(m int64) error {
	if m == 0 {
		return configErr("multiplier", m, "must not be zero")
	}
	f.multiplier = m
	return nil
}

// RoundingIncrement returns the rounding increment, or 0 if values are
// rounded to MaxFractionDigits only.
func (f *Formatter) RoundingIncrement() float64 {
	if f.increment == nil {
		return 0
	}
	v, _ := f.increment.Float64()
	return v
}

// SetRoundingIncrement sets the rounding increment: formatted values are
// rounded to a multiple of inc before rounding to MaxFractionDigits. An
// increment of 0 disables it.
func (f *Formatter) SetRoundingIncrement(inc float64) error {
	switch {
	case inc == 0:
		f.increment = nil
		return nil
	case math.IsNaN(inc) || math.IsInf(inc, 0) || inc < 0:
		return configErr("rounding increment", inc, "must be a positive finite number")
	}
	f.increment = new(decimal.Decimal).SetFloat64Shortest(inc)
	return nil
}

// DecimalSeparatorAlwaysShown reports whether the decimal separator is shown
// for values without fraction digits.
func (f *Formatter) DecimalSeparatorAlwaysShown() bool { return f.showPoint }

// SetDecimalSeparatorAlwaysShown sets whether the decimal separator is shown
// for values without fraction digits.
func (f *Formatter) SetDecimalSeparatorAlwaysShown(shown bool) { f.showPoint = shown }

func (f *Formatter) PositivePrefix() string     { return f.posPrefix }
func (f *Formatter) SetPositivePrefix(s string) { f.posPrefix = s }
func (f *Formatter) PositiveSuffix() string     { return f.posSuffix }
func (f *Formatter) SetPositiveSuffix(s string) { f.posSuffix = s }

// NegativePrefix returns the prefix of negative numbers. Unless set explicitly
// it is the minus sign followed by the positive prefix.
func (f *Formatter) NegativePrefix() string {
	if f.negExplicit {
		return f.negPrefix
	}
	return f.sym.Minus + f.posPrefix
}

// SetNegativePrefix sets the prefix of negative numbers.
func (f *Formatter) SetNegativePrefix(s string) {
	f.negPrefix, f.negSuffix = s, f.NegativeSuffix()
	f.negExplicit = true
}

// NegativeSuffix returns the suffix of negative numbers. Unless set explicitly
// it is the positive suffix.
func (f *Formatter) NegativeSuffix() string {
	if f.negExplicit {
		return f.negSuffix
	}
	return f.posSuffix
}

// SetNegativeSuffix sets the suffix of negative numbers.
func (f *Formatter) SetNegativeSuffix(s string) {
	f.negPrefix, f.negSuffix = f.NegativePrefix(), s
	f.negExplicit = true
}

// Symbols returns the symbols used by f.
func (f *Formatter) Symbols() Symbols { return f.sym }

// SetSymbols sets the symbols used by f.
func (f *Formatter) SetSymbols(sym Symbols) error {
	if err := sym.validate(); err != nil {
		return err
	}
	f.sym = sym
	return nil
}
