package numfmt

import (
	"unicode"
)

// Symbols holds the localized strings used when formatting and parsing
// numbers.
type Symbols struct {
	Decimal  string // decimal separator
	Group    string // grouping separator
	Minus    string // minus sign
	Zero     rune   // zero digit; digits one to nine follow it in code point order
	Infinity string
	NaN      string
}

// DefaultSymbols returns the symbols of the root locale.
func DefaultSymbols() Symbols {
	return Symbols{
		Decimal:  ".",
		Group:    ",",
		Minus:    "-",
		Zero:     '0',
		Infinity: "∞",
		NaN:      "NaN",
	}
}

func (s Symbols) validate() error {
	switch {
	case s.Decimal == "":
		return configErr("symbols", s, "empty decimal separator")
	case s.Group == "":
		return configErr("symbols", s, "empty grouping separator")
	case s.Decimal == s.Group:
		return configErr("symbols", s, "decimal and grouping separators must differ")
	case s.Minus == "":
		return configErr("symbols", s, "empty minus sign")
	case s.Infinity == "" || s.NaN == "":
		return configErr("symbols", s, "empty infinity or NaN symbol")
	}
	for d := rune(0); d < 10; d++ {
		if !unicode.IsDigit(s.Zero + d) {
			return configErr("symbols", s, "%q does not start a run of ten digits", s.Zero)
		}
	}
	return nil
}

// digit returns the value of r if it is a localized or ASCII digit.
func (s *Symbols) digit(r rune) (int, bool) {
	switch {
	case s.Zero <= r && r <= s.Zero+9:
		return int(r - s.Zero), true
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	}
	return 0, false
}
