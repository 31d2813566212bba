package conformance

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/db47h/decfmt/numfmt"
)

// testRounding formats every selected case and compares the output with the
// expected literal, or with the expected value through verify. Output that
// parses back must format to itself.
func (c *Checker) testRounding() {
	cases := c.Cases()
	c.log.WithField("cases", len(cases)).Debug("Rounding cases selected")
	for i := range cases {
		c.roundingCase(&cases[i])
	}
}

func (c *Checker) roundingCase(tc *Case) {
	label := tc.Label()
	f := c.newFormatter(numfmt.DefaultPattern)
	if f == nil {
		return
	}
	if err := f.Configure(tc.Config); err != nil {
		c.report(ConfigurationViolation, label+" Configure", "accepted", err.Error())
		return
	}
	if got := f.Config(); got != tc.Config {
		c.report(ConfigurationViolation, label+" Config", tc.Config.String(), got.String())
	}
	if tc.Increment != 0 {
		if err := f.SetRoundingIncrement(tc.Increment); err != nil {
			c.report(ConfigurationViolation, label+" SetRoundingIncrement", "accepted", err.Error())
			return
		}
		if got := f.RoundingIncrement(); got != tc.Increment {
			c.report(ConfigurationViolation, label+" RoundingIncrement", fmt.Sprint(tc.Increment), fmt.Sprint(got))
		}
	}

	got := f.Format(tc.Value)
	c.log.WithFields(log.Fields{"label": label, "output": got}).Debug("Formatted")
	if tc.WantValue != nil {
		c.verify(label, got, *tc.WantValue)
	} else if got != tc.Want {
		c.report(AssertionMismatch, label, tc.Want, got)
	}

	// rounded output is a fixed point of parse then format
	v, err := f.ParseFloat64(got)
	if err != nil {
		c.report(ParseFailure, label+" parse", got, err.Error())
		return
	}
	if again := f.Format(v); again != got {
		c.report(AssertionMismatch, label+" reformat", got, again)
	}
}
