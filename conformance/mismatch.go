package conformance

import "fmt"

// Kind classifies a Mismatch.
type Kind int

const (
	// AssertionMismatch is an output that differs from its expected value.
	AssertionMismatch Kind = iota
	// ParseFailure is text the formatter should parse but could not.
	ParseFailure
	// ConfigurationViolation is a setter that accepted a value outside of the
	// formatter invariants, rejected a valid one, or whose accessor disagrees
	// with it.
	ConfigurationViolation
)

var kindNames = [...]string{
	AssertionMismatch:      "assertion mismatch",
	ParseFailure:           "parse failure",
	ConfigurationViolation: "configuration violation",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Mismatch describes a single failed check. Mismatches are handed to the
// Reporter and never abort a run.
type Mismatch struct {
	Kind     Kind
	Test     string // name of the running test
	Label    string // scenario label
	Expected string
	Actual   string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("%s: %s: %s: expected %q, got %q", m.Test, m.Kind, m.Label, m.Expected, m.Actual)
}
