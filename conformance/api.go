package conformance

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/numfmt"
)

// canonical values formatted under every API configuration.
var apiValues = []float64{
	0, 1, -1,
	123456789012, 1e21, // large magnitudes
	1.23e-7,           // small magnitude
	3.141592653589793, // many fraction digits
	-98765.4321,
}

var apiConfigs = []numfmt.Config{
	{MinFractionDigits: 0, MaxFractionDigits: 3, RoundingMode: decimal.ToNearestEven, Grouping: true},
	{MinFractionDigits: 2, MaxFractionDigits: 2, RoundingMode: decimal.ToNearestAway, Grouping: true},
	{MinFractionDigits: 0, MaxFractionDigits: 0, RoundingMode: decimal.ToZero},
	{MinFractionDigits: 1, MaxFractionDigits: 6, RoundingMode: decimal.ToPositiveInf, Grouping: true},
	{MinFractionDigits: 0, MaxFractionDigits: 10, RoundingMode: decimal.ToNegativeInf},
	{MinFractionDigits: 3, MaxFractionDigits: 5, RoundingMode: decimal.ToNearestZero, Grouping: true},
	{MinFractionDigits: 0, MaxFractionDigits: 1, RoundingMode: decimal.AwayFromZero, Grouping: true},
}

// patterns that must survive ApplyPattern(Pattern()).
var apiPatterns = []string{
	numfmt.DefaultPattern,
	"0.00",
	"#,##,##0.0#",
	"#0.##;(#0.##)",
	"'#'#,##0",
	"#,##0.05",
	"00000",
	"#,##0.",
	"#.##",
	"'x'0.0' units'",
	"it''s 0",
}

// patterns that must be rejected.
var apiBadPatterns = []string{
	"",
	"#,##0.0.0",
	"0#",
	"#,##0,",
	"'abc",
	"0;0;0",
	"#.0#0",
	"0 x0",
}

// testAPI exercises construction, accessors and mutators, pattern handling,
// cloning and format/parse round trips.
func (c *Checker) testAPI() {
	c.checkDefaults()
	c.checkProperties()
	c.checkConfigure()
	for _, cfg := range apiConfigs {
		c.checkValues(cfg)
	}
	c.checkSpecialValues()
	c.checkClone()
	c.checkPatterns()
	c.checkParseErrors()
}

func (c *Checker) checkDefaults() {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	c.expectInt("default MinFractionDigits", 0, f.MinFractionDigits())
	c.expectInt("default MaxFractionDigits", 3, f.MaxFractionDigits())
	c.expectInt("default MinIntegerDigits", 1, f.MinIntegerDigits())
	c.expectInt("default GroupingSize", 3, f.GroupingSize())
	c.expectInt("default SecondaryGroupingSize", 0, f.SecondaryGroupingSize())
	c.expectInt("default Multiplier", 1, int(f.Multiplier()))
	if !f.GroupingUsed() {
		c.report(ConfigurationViolation, "default GroupingUsed", "true", "false")
	}
	if m := f.RoundingMode(); m != decimal.ToNearestEven {
		c.report(ConfigurationViolation, "default RoundingMode", decimal.ToNearestEven.Name(), m.Name())
	}
	if inc := f.RoundingIncrement(); inc != 0 {
		c.report(ConfigurationViolation, "default RoundingIncrement", "0", fmt.Sprint(inc))
	}
	if p := f.Pattern(); p != numfmt.DefaultPattern {
		c.report(AssertionMismatch, "default Pattern", numfmt.DefaultPattern, p)
	}
}

func (c *Checker) expectInt(label string, want, got int) {
	if want != got {
		c.report(ConfigurationViolation, label, fmt.Sprint(want), fmt.Sprint(got))
	}
}

// property describes an accessor/mutator pair and values it must accept and
// reject.
type property[T comparable] struct {
	name    string
	prepare func(f Formatter) error
	get     func(f Formatter) T
	set     func(f Formatter, v T) error
	valid   []T
	invalid []T
}

func checkProperty[T comparable](c *Checker, p property[T]) {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	if p.prepare != nil {
		if err := p.prepare(f); err != nil {
			c.report(ConfigurationViolation, p.name+" setup", "accepted", err.Error())
			return
		}
	}
	for _, v := range p.valid {
		label := fmt.Sprintf("Set%s(%v)/%s", p.name, v, p.name)
		if err := p.set(f, v); err != nil {
			c.report(ConfigurationViolation, label, "accepted", err.Error())
			continue
		}
		if got := p.get(f); got != v {
			c.report(ConfigurationViolation, label, fmt.Sprint(v), fmt.Sprint(got))
		}
		before := stateOf(f)
		if err := p.set(f, v); err != nil {
			c.report(ConfigurationViolation, label+" repeated", "accepted", err.Error())
		} else if after := stateOf(f); after != before {
			c.report(ConfigurationViolation, label+" repeated", fmt.Sprintf("%+v", before), fmt.Sprintf("%+v", after))
		}
	}
	for _, v := range p.invalid {
		label := fmt.Sprintf("Set%s(%v)", p.name, v)
		before := stateOf(f)
		err := p.set(f, v)
		switch {
		case err == nil:
			c.report(ConfigurationViolation, label, "rejected", "accepted")
		case !errors.Is(err, numfmt.ErrInvalidConfig):
			c.report(ConfigurationViolation, label, "error wrapping ErrInvalidConfig", err.Error())
		}
		if stateOf(f) != before {
			c.report(ConfigurationViolation, label+" state", "unchanged", "modified")
		}
	}
}

func noErr[T any](set func(Formatter, T)) func(Formatter, T) error {
	return func(f Formatter, v T) error {
		set(f, v)
		return nil
	}
}

func (c *Checker) checkProperties() {
	checkProperty(c, property[int]{
		name:    "MinFractionDigits",
		prepare: func(f Formatter) error { return f.SetMaxFractionDigits(6) },
		get:     Formatter.MinFractionDigits,
		set:     Formatter.SetMinFractionDigits,
		valid:   []int{0, 1, 3, 6},
		invalid: []int{-1, 7},
	})
	checkProperty(c, property[int]{
		name:    "MaxFractionDigits",
		prepare: func(f Formatter) error { return f.SetMinFractionDigits(2) },
		get:     Formatter.MaxFractionDigits,
		set:     Formatter.SetMaxFractionDigits,
		valid:   []int{2, 5, 10, numfmt.MaxDigits},
		invalid: []int{1, -1, numfmt.MaxDigits + 1},
	})
	checkProperty(c, property[int]{
		name:    "MinIntegerDigits",
		get:     Formatter.MinIntegerDigits,
		set:     Formatter.SetMinIntegerDigits,
		valid:   []int{0, 1, 5},
		invalid: []int{-1, numfmt.MaxDigits + 1},
	})
	checkProperty(c, property[int]{
		name:    "MaxIntegerDigits",
		prepare: func(f Formatter) error { return f.SetMinIntegerDigits(2) },
		get:     Formatter.MaxIntegerDigits,
		set:     Formatter.SetMaxIntegerDigits,
		valid:   []int{2, 10, numfmt.MaxDigits},
		invalid: []int{1, -1},
	})
	checkProperty(c, property[int]{
		name:    "GroupingSize",
		get:     Formatter.GroupingSize,
		set:     Formatter.SetGroupingSize,
		valid:   []int{1, 2, 3, 4},
		invalid: []int{0, -1},
	})
	checkProperty(c, property[int]{
		name:    "SecondaryGroupingSize",
		get:     Formatter.SecondaryGroupingSize,
		set:     Formatter.SetSecondaryGroupingSize,
		valid:   []int{0, 2, 4},
		invalid: []int{-1},
	})
	checkProperty(c, property[int64]{
		name:    "Multiplier",
		get:     Formatter.Multiplier,
		set:     Formatter.SetMultiplier,
		valid:   []int64{1, 100, -1},
		invalid: []int64{0},
	})
	checkProperty(c, property[decimal.RoundingMode]{
		name: "RoundingMode",
		get:  Formatter.RoundingMode,
		set:  Formatter.SetRoundingMode,
		valid: []decimal.RoundingMode{
			decimal.ToPositiveInf, decimal.ToNegativeInf, decimal.AwayFromZero, decimal.ToZero,
			decimal.ToNearestAway, decimal.ToNearestZero, decimal.ToNearestEven,
		},
		invalid: []decimal.RoundingMode{decimal.ToNearestZero + 1},
	})
	checkProperty(c, property[float64]{
		name:    "RoundingIncrement",
		get:     Formatter.RoundingIncrement,
		set:     Formatter.SetRoundingIncrement,
		valid:   []float64{0.5, 0.05, 10, 0},
		invalid: []float64{-1, math.Inf(1), math.NaN()},
	})
	checkProperty(c, property[bool]{
		name:  "GroupingUsed",
		get:   Formatter.GroupingUsed,
		set:   noErr(Formatter.SetGroupingUsed),
		valid: []bool{false, true},
	})
	checkProperty(c, property[bool]{
		name:  "DecimalSeparatorAlwaysShown",
		get:   Formatter.DecimalSeparatorAlwaysShown,
		set:   noErr(Formatter.SetDecimalSeparatorAlwaysShown),
		valid: []bool{true, false},
	})
}

// checkConfigure checks that configurations are applied as a unit and that
// invalid ones leave the formatter unchanged.
func (c *Checker) checkConfigure() {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	for _, cfg := range apiConfigs {
		label := "Configure(" + cfg.String() + ")"
		if err := f.Configure(cfg); err != nil {
			c.report(ConfigurationViolation, label, "accepted", err.Error())
			continue
		}
		if got := f.Config(); got != cfg {
			c.report(ConfigurationViolation, label+"/Config", cfg.String(), got.String())
		}
	}
	for _, cfg := range []numfmt.Config{
		{MinFractionDigits: 3, MaxFractionDigits: 2},
		{MinFractionDigits: -1, MaxFractionDigits: 2},
		{MaxFractionDigits: 2, RoundingMode: decimal.ToNearestZero + 1},
	} {
		label := "Configure(" + cfg.String() + ")"
		before := stateOf(f)
		if err := f.Configure(cfg); err == nil {
			c.report(ConfigurationViolation, label, "rejected", "accepted")
		} else if !errors.Is(err, numfmt.ErrInvalidConfig) {
			c.report(ConfigurationViolation, label, "error wrapping ErrInvalidConfig", err.Error())
		}
		if stateOf(f) != before {
			c.report(ConfigurationViolation, label+" state", "unchanged", "modified")
		}
	}
}

// checkValues formats the canonical values under cfg and checks that the
// output is deterministic, well formed and parses back to the value rounded
// by cfg.
func (c *Checker) checkValues(cfg numfmt.Config) {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	if err := f.Configure(cfg); err != nil {
		c.report(ConfigurationViolation, "Configure("+cfg.String()+")", "accepted", err.Error())
		return
	}
	for _, v := range apiValues {
		label := fmt.Sprintf("Format(%v) %s", v, cfg)
		s := f.Format(v)
		if again := f.Format(v); again != s {
			c.report(AssertionMismatch, label+" determinism", s, again)
		}
		c.checkWellFormed(f, label, s)

		want := new(decimal.Decimal).SetFloat64Shortest(v).SetMode(cfg.RoundingMode)
		want.Quantize(want, cfg.MaxFractionDigits)
		got, err := f.Parse(s)
		if err != nil {
			c.report(ParseFailure, label+" Parse("+s+")", want.Text('f', -1), err.Error())
			continue
		}
		if got.Cmp(want) != 0 {
			c.report(AssertionMismatch, label+" Parse("+s+")", want.Text('f', -1), got.Text('f', -1))
		}
	}
}

// checkWellFormed checks the fraction digit count and grouping of s, which was
// formatted by f with its default affixes.
func (c *Checker) checkWellFormed(f Formatter, label, s string) {
	sym := f.Symbols()
	body := strings.TrimPrefix(s, sym.Minus)
	intPart, frac, _ := strings.Cut(body, sym.Decimal)

	n := utf8.RuneCountInString(frac)
	if n < f.MinFractionDigits() || n > f.MaxFractionDigits() {
		c.report(AssertionMismatch, label+" fraction digits",
			fmt.Sprintf("%d..%d", f.MinFractionDigits(), f.MaxFractionDigits()), fmt.Sprintf("%d in %q", n, s))
	}

	if !f.GroupingUsed() {
		if strings.Contains(intPart, sym.Group) {
			c.report(AssertionMismatch, label+" grouping", "no grouping separator", s)
		}
		return
	}
	primary, secondary := f.GroupingSize(), f.SecondaryGroupingSize()
	if secondary == 0 {
		secondary = primary
	}
	groups := strings.Split(intPart, sym.Group)
	for i := len(groups) - 1; i >= 0; i-- {
		size := secondary
		if i == len(groups)-1 {
			size = primary
		}
		n := utf8.RuneCountInString(groups[i])
		// the leading group may be shorter
		if n == size || i == 0 && n > 0 && n < size {
			continue
		}
		c.report(AssertionMismatch, label+" grouping",
			fmt.Sprintf("groups of %d then %d", primary, secondary), s)
		return
	}
}

func (c *Checker) checkSpecialValues() {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	sym := f.Symbols()
	if s := f.Format(math.Inf(1)); s != sym.Infinity {
		c.report(AssertionMismatch, "Format(+Inf)", sym.Infinity, s)
	}
	if s := f.Format(math.Inf(-1)); s != sym.Minus+sym.Infinity {
		c.report(AssertionMismatch, "Format(-Inf)", sym.Minus+sym.Infinity, s)
	}
	if s := f.Format(math.NaN()); s != sym.NaN {
		c.report(AssertionMismatch, "Format(NaN)", sym.NaN, s)
	}
	if v, err := f.ParseFloat64(sym.NaN); err != nil {
		c.report(ParseFailure, "ParseFloat64(NaN)", "NaN", err.Error())
	} else if !math.IsNaN(v) {
		c.report(AssertionMismatch, "ParseFloat64(NaN)", "NaN", fmt.Sprint(v))
	}
	if v, err := f.ParseFloat64(sym.Minus + sym.Infinity); err != nil {
		c.report(ParseFailure, "ParseFloat64(-Inf)", "-Inf", err.Error())
	} else if !math.IsInf(v, -1) {
		c.report(AssertionMismatch, "ParseFloat64(-Inf)", "-Inf", fmt.Sprint(v))
	}
	if s := f.Format(math.Copysign(0, -1)); s != "0" {
		c.report(AssertionMismatch, "Format(-0)", "0", s)
	}
}

// checkClone checks that clones are equal to and independent of their
// original.
func (c *Checker) checkClone() {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	g := f.Clone()
	if stateOf(f) != stateOf(g) {
		c.report(AssertionMismatch, "Clone/Equal", "equal", "different")
	}
	old := f.MaxFractionDigits()
	if err := g.SetMaxFractionDigits(old + 1); err != nil {
		c.report(ConfigurationViolation, "Clone/SetMaxFractionDigits", "accepted", err.Error())
		return
	}
	if f.MaxFractionDigits() != old {
		c.report(AssertionMismatch, "Clone independence", fmt.Sprint(old), fmt.Sprint(f.MaxFractionDigits()))
	}
	if stateOf(f) == stateOf(g) {
		c.report(AssertionMismatch, "Clone/Equal after mutation", "different", "equal")
	}
}

// checkPatterns checks that patterns survive a Pattern/ApplyPattern round
// trip and that malformed patterns are rejected.
func (c *Checker) checkPatterns() {
	for _, p := range apiPatterns {
		f := c.newFormatter(p)
		if f == nil {
			continue
		}
		out := f.Pattern()
		g := c.newFormatter(out)
		if g == nil {
			continue
		}
		if stateOf(f) != stateOf(g) {
			c.report(AssertionMismatch, "NewPattern("+p+")/Pattern", p, out)
		}
		if again := g.Pattern(); again != out {
			c.report(AssertionMismatch, "Pattern stability "+p, out, again)
		}
		h := c.newFormatter(numfmt.DefaultPattern)
		if h == nil {
			continue
		}
		if err := h.ApplyPattern(out); err != nil {
			c.report(ConfigurationViolation, "ApplyPattern("+out+")", "accepted", err.Error())
		} else if stateOf(f) != stateOf(h) {
			c.report(AssertionMismatch, "ApplyPattern("+out+")", p, h.Pattern())
		}
	}

	c.checkIncrementPattern()

	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	for _, p := range apiBadPatterns {
		label := fmt.Sprintf("ApplyPattern(%q)", p)
		before := stateOf(f)
		if err := f.ApplyPattern(p); err == nil {
			c.report(ConfigurationViolation, label, "rejected", "accepted")
		} else if !errors.Is(err, numfmt.ErrInvalidConfig) {
			c.report(ConfigurationViolation, label, "error wrapping ErrInvalidConfig", err.Error())
		}
		if stateOf(f) != before {
			c.report(ConfigurationViolation, label+" state", "unchanged", "modified")
		}
	}
}

// checkIncrementPattern checks that a rounding increment installed by its
// setter is part of the pattern.
func (c *Checker) checkIncrementPattern() {
	f := c.newFormatter("#,##0.00#")
	if f == nil {
		return
	}
	if err := f.SetRoundingIncrement(0.05); err != nil {
		c.report(ConfigurationViolation, "SetRoundingIncrement(0.05)", "accepted", err.Error())
		return
	}
	out := f.Pattern()
	g := c.newFormatter(out)
	if g == nil {
		return
	}
	if stateOf(f) != stateOf(g) {
		c.report(AssertionMismatch, "SetRoundingIncrement(0.05)/Pattern", "#,##0.05#", out)
	}
	if a, b := f.Format(1.237), g.Format(1.237); a != b {
		c.report(AssertionMismatch, "SetRoundingIncrement(0.05)/Pattern Format(1.237)", a, b)
	}
}

func (c *Checker) checkParseErrors() {
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	for _, s := range []string{"", "abc", "1.2.3", "--1", "1x", ","} {
		label := fmt.Sprintf("Parse(%q)", s)
		x, err := f.Parse(s)
		switch {
		case err == nil:
			c.report(AssertionMismatch, label, "error", x.Text('f', -1))
		case !errors.Is(err, numfmt.ErrSyntax):
			c.report(AssertionMismatch, label, "error wrapping ErrSyntax", err.Error())
		}
	}
}
