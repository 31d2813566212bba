package numfmt

import (
	"errors"
	"math"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		text    string
		want    string
	}{
		{DefaultPattern, "0", "0"},
		{DefaultPattern, "1,234,567.891", "1234567.891"},
		{DefaultPattern, "1234567.891", "1234567.891"},
		{DefaultPattern, "12,34,5", "12345"},
		{DefaultPattern, "-1,234.5", "-1234.5"},
		{DefaultPattern, ".5", "0.5"},
		{DefaultPattern, "5.", "5"},
		{DefaultPattern, "000.100", "0.1"},
		{"#0.##;(#0.##)", "(3.14)", "-3.14"},
		{"#0.##;(#0.##)", "3.14", "3.14"},
		{"0.0' kg'", "7.5 kg", "7.5"},
		{"'#'0", "#7", "7"},
	} {
		f := mustPattern(t, tc.pattern)
		x, err := f.Parse(tc.text)
		assert.NilError(t, err, "pattern %q, text %q", tc.pattern, tc.text)
		assert.Equal(t, tc.want, x.Text('f', -1), "pattern %q, text %q", tc.pattern, tc.text)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		text    string
		pos     int
	}{
		{DefaultPattern, "", 0},
		{DefaultPattern, "abc", 0},
		{DefaultPattern, "1.2.3", 3},
		{DefaultPattern, "--1", 1},
		{DefaultPattern, ",1", 0},
		{DefaultPattern, "-", 1},
		{DefaultPattern, "NaN", 0},
		{"0", "1,000", 1},
		{"0.0' kg'", "7.5", 0},
		{"#0.##;(#0.##)", "(3.14", 0},
	} {
		f := mustPattern(t, tc.pattern)
		_, err := f.Parse(tc.text)
		assert.Check(t, errors.Is(err, ErrSyntax), "pattern %q, text %q: %v", tc.pattern, tc.text, err)
		var perr *ParseError
		if assert.Check(t, errors.As(err, &perr)) {
			assert.Check(t, is.Equal(tc.text, perr.Text))
			assert.Check(t, is.Equal(tc.pos, perr.Pos), "text %q", tc.text)
		}
	}
}

func TestParse_Special(t *testing.T) {
	f := New()
	x, err := f.Parse("∞")
	assert.NilError(t, err)
	assert.Assert(t, x.IsInf() && !x.Signbit())
	x, err = f.Parse("-∞")
	assert.NilError(t, err)
	assert.Assert(t, x.IsInf() && x.Signbit())

	v, err := f.ParseFloat64("NaN")
	assert.NilError(t, err)
	assert.Assert(t, math.IsNaN(v))
}

func TestParse_Multiplier(t *testing.T) {
	f := mustPattern(t, "#,##0.##' %'")
	assert.NilError(t, f.SetMultiplier(100))
	x, err := f.Parse("12.5 %")
	assert.NilError(t, err)
	assert.Equal(t, "0.125", x.Text('f', -1))

	assert.NilError(t, f.SetMultiplier(3))
	v, err := f.ParseFloat64("1 %")
	assert.NilError(t, err)
	assert.Equal(t, 1.0/3, v)
}

func TestParse_Symbols(t *testing.T) {
	sym := Symbols{Decimal: ",", Group: " ", Minus: "−", Zero: '٠', Infinity: "∞", NaN: "NaN"}
	f, err := NewPatternSymbols(DefaultPattern, sym)
	assert.NilError(t, err)
	for _, text := range []string{"−١ ٢٣٤,٥", "−1 234,5", "−1234,5"} {
		x, err := f.Parse(text)
		assert.NilError(t, err, text)
		assert.Equal(t, "-1234.5", x.Text('f', -1), text)
	}
}

// Formatted output parses back to the rounded value.
func TestParse_RoundTrip(t *testing.T) {
	f := New()
	assert.NilError(t, f.SetMaxFractionDigits(6))
	for _, v := range []float64{0, 1, -1, 0.1, 1234567.891, -0.000123, 3.141592, 1e15} {
		s := f.Format(v)
		got, err := f.ParseFloat64(s)
		assert.NilError(t, err, s)
		assert.Equal(t, v, got, s)
	}
}
