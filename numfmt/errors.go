package numfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by all errors reporting a setting that
	// violates the formatter invariants.
	ErrInvalidConfig = errors.New("numfmt: invalid configuration")
	// ErrSyntax is wrapped by all errors reporting text that cannot be parsed.
	ErrSyntax = errors.New("numfmt: invalid syntax")
)

// A ConfigError is returned by setters given a value outside of the
// formatter's invariants. The formatter is left unchanged.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("numfmt: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func configErr(field string, value any, format string, args ...any) error {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// A PatternError reports a malformed pattern and the byte offset at which it
// was detected.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("numfmt: pattern %q, offset %d: %s", e.Pattern, e.Pos, e.Msg)
}

func (e *PatternError) Unwrap() error { return ErrInvalidConfig }

// A ParseError reports text that does not match the formatter's pattern and
// the byte offset at which the mismatch was detected.
type ParseError struct {
	Text string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numfmt: parsing %q, offset %d: %s", e.Text, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }
