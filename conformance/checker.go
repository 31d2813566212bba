// Package conformance checks that a decimal number formatter rounds, formats
// and parses values exactly as specified.
//
// A Checker drives a Formatter through a matrix of configurations and values.
// Every failed check is handed to a Reporter as a Mismatch and the run goes on;
// a run never aborts on a mismatch.
package conformance

import (
	"strings"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/numfmt"
)

// Formatter is the surface of a formatter under test. Adapt turns a
// *numfmt.Formatter into one.
//
// Clone must return an independent formatter of the same implementation, so
// that wrappers stay in place. The Checker compares formatters through their
// accessors and Pattern.
type Formatter interface {
	Format(v float64) string
	Parse(text string) (*decimal.Decimal, error)
	ParseFloat64(text string) (float64, error)

	Config() numfmt.Config
	Configure(c numfmt.Config) error

	MinIntegerDigits() int
	SetMinIntegerDigits(n int) error
	MaxIntegerDigits() int
	SetMaxIntegerDigits(n int) error
	MinFractionDigits() int
	SetMinFractionDigits(n int) error
	MaxFractionDigits() int
	SetMaxFractionDigits(n int) error
	RoundingMode() decimal.RoundingMode
	SetRoundingMode(mode decimal.RoundingMode) error
	GroupingUsed() bool
	SetGroupingUsed(used bool)
	GroupingSize() int
	SetGroupingSize(n int) error
	SecondaryGroupingSize() int
	SetSecondaryGroupingSize(n int) error
	Multiplier() int64
	SetMultiplier(m int64) error
	RoundingIncrement() float64
	SetRoundingIncrement(inc float64) error
	DecimalSeparatorAlwaysShown() bool
	SetDecimalSeparatorAlwaysShown(shown bool)
	Symbols() numfmt.Symbols

	ApplyPattern(pattern string) error
	Pattern() string
	Clone() Formatter
}

// adapted wraps a *numfmt.Formatter so that Clone returns a Formatter.
type adapted struct {
	*numfmt.Formatter
}

func (f adapted) Clone() Formatter { return adapted{f.Formatter.Clone()} }

// Adapt returns f as a Formatter.
func Adapt(f *numfmt.Formatter) Formatter {
	return adapted{f}
}

// state is the observable configuration of a Formatter.
type state struct {
	config         numfmt.Config
	minInt, maxInt int
	groupSize      int
	groupSize2     int
	multiplier     int64
	increment      float64
	showPoint      bool
	pattern        string
	symbols        numfmt.Symbols
}

func stateOf(f Formatter) state {
	return state{
		config:     f.Config(),
		minInt:     f.MinIntegerDigits(),
		maxInt:     f.MaxIntegerDigits(),
		groupSize:  f.GroupingSize(),
		groupSize2: f.SecondaryGroupingSize(),
		multiplier: f.Multiplier(),
		increment:  f.RoundingIncrement(),
		showPoint:  f.DecimalSeparatorAlwaysShown(),
		pattern:    f.Pattern(),
		symbols:    f.Symbols(),
	}
}

// Config configures a Checker. The zero value checks *numfmt.Formatter
// against the built-in case table and logs mismatches.
type Config struct {
	// NewFormatter returns a fresh formatter for the given pattern.
	NewFormatter func(pattern string) (Formatter, error)
	// Reporter receives mismatches. Defaults to a LogReporter.
	Reporter Reporter
	// Logger receives progress messages. Defaults to the logrus standard logger.
	Logger log.FieldLogger
	// Cases are appended to the built-in rounding cases.
	Cases []Case
	// Param restricts TestRounding to the cases whose label contains it.
	Param string
}

// A Checker runs conformance tests against a formatter. Runs on the same
// Checker are serialized.
//
// The Reporter is called while a run holds the Checker's lock: it may call
// Mismatches, but not Run, TestAPI, TestRounding or Verify.
type Checker struct {
	mu        sync.Mutex
	cfg       Config
	reporter  Reporter
	log       log.FieldLogger
	cases     []Case
	canonical *numfmt.Formatter
	test      string       // name of the running test
	count     atomic.Int64 // mismatches reported, read without mu
}

// New returns a Checker for cfg.
func New(cfg Config) (*Checker, error) {
	cases, err := DefaultCases()
	if err != nil {
		return nil, err
	}
	c := &Checker{cfg: cfg, cases: append(cases, cfg.Cases...)}
	if c.cfg.NewFormatter == nil {
		c.cfg.NewFormatter = func(pattern string) (Formatter, error) {
			f, err := numfmt.NewPattern(pattern)
			if err != nil {
				return nil, err
			}
			return Adapt(f), nil
		}
	}
	c.log = cfg.Logger
	if c.log == nil {
		c.log = log.StandardLogger()
	}
	user := cfg.Reporter
	if user == nil {
		user = LogReporter{Logger: c.log}
	}
	c.reporter = multiReporter{ReporterFunc(func(Mismatch) { c.count.Add(1) }), user}
	c.canonical, err = canonicalFormatter()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// canonicalFormatter returns the formatter used by Verify: no grouping, up to
// 15 fraction digits and HALF_EVEN rounding.
func canonicalFormatter() (*numfmt.Formatter, error) {
	return numfmt.NewPattern("0." + strings.Repeat("#", 15))
}

// Mismatches returns the number of mismatches reported since the Checker was
// created.
func (c *Checker) Mismatches() int {
	return int(c.count.Load())
}

// Cases returns the rounding cases selected by the Param filter.
func (c *Checker) Cases() []Case {
	var sel []Case
	for i := range c.cases {
		if c.cfg.Param == "" || strings.Contains(c.cases[i].Label(), c.cfg.Param) {
			sel = append(sel, c.cases[i])
		}
	}
	return sel
}

func (c *Checker) report(kind Kind, label, expected, actual string) {
	c.reporter.Report(Mismatch{
		Kind:     kind,
		Test:     c.test,
		Label:    label,
		Expected: expected,
		Actual:   actual,
	})
}

// newFormatter returns a fresh formatter for pattern. A failure is reported
// and nil is returned.
func (c *Checker) newFormatter(pattern string) Formatter {
	f, err := c.cfg.NewFormatter(pattern)
	if err != nil {
		c.report(ConfigurationViolation, "new formatter "+pattern, "valid pattern", err.Error())
		return nil
	}
	return f
}

// Verify renders expected through the canonical formatter and compares the
// result with actual. A difference is reported under label. It returns whether
// the texts matched.
func (c *Checker) Verify(label, actual string, expected float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.test == "" {
		c.test = "Verify"
		defer func() { c.test = "" }()
	}
	return c.verify(label, actual, expected)
}

func (c *Checker) verify(label, actual string, expected float64) bool {
	want := c.canonical.Format(expected)
	c.log.WithFields(log.Fields{"label": label, "expected": want, "actual": actual}).Trace("verify")
	if actual != want {
		c.report(AssertionMismatch, label, want, actual)
		return false
	}
	return true
}
