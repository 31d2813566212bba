package conformance

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/numfmt"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestChecker(t *testing.T, cfg Config) (*Checker, *Recorder) {
	t.Helper()
	rec := new(Recorder)
	cfg.Reporter = rec
	cfg.Logger = quietLogger()
	c, err := New(cfg)
	require.NoError(t, err)
	return c, rec
}

func mismatchLines(ms []Mismatch) string {
	var b strings.Builder
	for _, m := range ms {
		b.WriteString(m.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

func TestChecker_Run(t *testing.T) {
	c, rec := newTestChecker(t, Config{})
	n, err := c.Run()
	require.NoError(t, err)
	assert.Zero(t, n, mismatchLines(rec.Mismatches()))
	assert.Zero(t, c.Mismatches())
}

func TestChecker_RunSingle(t *testing.T) {
	c, rec := newTestChecker(t, Config{})

	c.TestAPI()
	assert.Zero(t, rec.Len(), mismatchLines(rec.Mismatches()))

	c.TestRounding()
	assert.Zero(t, rec.Len(), mismatchLines(rec.Mismatches()))
}

func TestChecker_RunUnknown(t *testing.T) {
	c, rec := newTestChecker(t, Config{})
	n, err := c.Run("TestRounding", "TestNothing")
	assert.True(t, errors.Is(err, ErrUnknownTest))
	assert.Zero(t, n)
	assert.Zero(t, rec.Len())
}

func TestChecker_Tests(t *testing.T) {
	c, _ := newTestChecker(t, Config{})
	var names []string
	for _, tt := range c.Tests() {
		names = append(names, tt.Name)
	}
	assert.Equal(t, []string{"TestAPI", "TestRounding"}, names)
}

func TestChecker_Param(t *testing.T) {
	all, _ := newTestChecker(t, Config{})
	c, _ := newTestChecker(t, Config{Param: "carry"})
	sel := c.Cases()
	require.NotEmpty(t, sel)
	assert.Less(t, len(sel), len(all.Cases()))
	for i := range sel {
		assert.Contains(t, sel[i].Label(), "carry")
	}
}

func TestChecker_Verify(t *testing.T) {
	c, rec := newTestChecker(t, Config{})
	assert.True(t, c.Verify("half", "0.5", 0.5))
	assert.True(t, c.Verify("integer", "-3", -3))
	assert.Zero(t, rec.Len())

	assert.False(t, c.Verify("wrong", "2.5", 3))
	ms := rec.Mismatches()
	require.Len(t, ms, 1)
	assert.Equal(t, Mismatch{
		Kind:     AssertionMismatch,
		Test:     "Verify",
		Label:    "wrong",
		Expected: "3",
		Actual:   "2.5",
	}, ms[0])
	assert.Equal(t, 1, c.Mismatches())
}

// truncating formats every value with ToZero regardless of its rounding mode.
type truncating struct {
	*numfmt.Formatter
}

func (f truncating) Clone() Formatter { return truncating{f.Formatter.Clone()} }

func (f truncating) Format(v float64) string {
	g := f.Formatter.Clone()
	if err := g.SetRoundingMode(decimal.ToZero); err != nil {
		panic(err)
	}
	return g.Format(v)
}

func TestChecker_FaultyFormatter(t *testing.T) {
	c, rec := newTestChecker(t, Config{
		NewFormatter: func(pattern string) (Formatter, error) {
			f, err := numfmt.NewPattern(pattern)
			if err != nil {
				return nil, err
			}
			return truncating{f}, nil
		},
	})
	n, err := c.Run("TestRounding")
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, n, rec.Len())
	for _, m := range rec.Mismatches() {
		assert.Equal(t, "TestRounding", m.Test)
	}
	assert.Equal(t, n, c.Mismatches())
}

// lenient accepts invalid multipliers.
type lenient struct {
	*numfmt.Formatter
}

func (f lenient) Clone() Formatter { return lenient{f.Formatter.Clone()} }

func (f lenient) SetMultiplier(m int64) error {
	if m == 0 {
		return nil
	}
	return f.Formatter.SetMultiplier(m)
}

func TestChecker_ConfigurationViolation(t *testing.T) {
	c, rec := newTestChecker(t, Config{
		NewFormatter: func(pattern string) (Formatter, error) {
			f, err := numfmt.NewPattern(pattern)
			return lenient{f}, err
		},
	})
	n, err := c.Run("TestAPI")
	require.NoError(t, err)
	require.Equal(t, 1, n, mismatchLines(rec.Mismatches()))
	m := rec.Mismatches()[0]
	assert.Equal(t, ConfigurationViolation, m.Kind)
	assert.Equal(t, "SetMultiplier(0)", m.Label)
	assert.Equal(t, "rejected", m.Expected)
}

// aliasing returns itself from Clone.
type aliasing struct {
	*numfmt.Formatter
}

func (f aliasing) Clone() Formatter { return f }

func TestChecker_CloneUsesFormatterUnderTest(t *testing.T) {
	c, rec := newTestChecker(t, Config{
		NewFormatter: func(pattern string) (Formatter, error) {
			f, err := numfmt.NewPattern(pattern)
			return aliasing{f}, err
		},
	})
	n, err := c.Run("TestAPI")
	require.NoError(t, err)
	var labels []string
	for _, m := range rec.Mismatches() {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"Clone independence", "Clone/Equal after mutation"}, labels)
	assert.Equal(t, 2, n)
}

func TestAdapt(t *testing.T) {
	f, err := numfmt.NewPattern("0.00")
	require.NoError(t, err)
	a := Adapt(f)
	b := a.Clone()
	require.IsType(t, a, b)
	assert.Equal(t, stateOf(a), stateOf(b))
	require.NoError(t, b.SetMaxFractionDigits(4))
	assert.Equal(t, 2, a.MaxFractionDigits())
	assert.NotEqual(t, stateOf(a), stateOf(b))
}

func TestChecker_ReporterReadsMismatches(t *testing.T) {
	var c *Checker
	var seen []int
	c, err := New(Config{
		Logger: quietLogger(),
		Reporter: ReporterFunc(func(Mismatch) {
			seen = append(seen, c.Mismatches())
		}),
	})
	require.NoError(t, err)

	done := make(chan bool)
	go func() {
		done <- c.Verify("a", "1", 2)
	}()
	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(10 * time.Second):
		t.Fatal("Verify did not return")
	}
	assert.False(t, c.Verify("b", "1", 3))
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, c.Mismatches())
}

func TestChecker_ExtraCases(t *testing.T) {
	want := "1.3"
	c, rec := newTestChecker(t, Config{
		Param: "extra",
		Cases: []Case{{
			Name:   "extra",
			Value:  1.25,
			Config: numfmt.Config{MaxFractionDigits: 1, RoundingMode: decimal.ToNearestAway},
			Want:   "1.2",
		}},
	})
	require.Len(t, c.Cases(), 1)
	n, err := c.Run("TestRounding")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, want, rec.Mismatches()[0].Actual)
}

func TestMismatch_Error(t *testing.T) {
	m := Mismatch{Kind: ParseFailure, Test: "TestRounding", Label: "x", Expected: "1", Actual: "bad"}
	assert.Equal(t, `TestRounding: parse failure: x: expected "1", got "bad"`, m.Error())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestLogReporter(t *testing.T) {
	var b strings.Builder
	l := log.New()
	l.SetOutput(&b)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	LogReporter{Logger: l}.Report(Mismatch{Kind: AssertionMismatch, Test: "TestAPI", Label: "lbl", Expected: "1", Actual: "2"})
	out := b.String()
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "msg=Mismatch")
	assert.Contains(t, out, "label=lbl")
	assert.Contains(t, out, "expected=1")
}
