package numfmt

import (
	"fmt"

	decimal "github.com/db47h/decfmt"
)

// Config groups the settings that drive rounding and grouping of formatted
// values.
type Config struct {
	MinFractionDigits int
	MaxFractionDigits int
	RoundingMode      decimal.RoundingMode
	Grouping          bool
}

// Validate checks that 0 <= MinFractionDigits <= MaxFractionDigits <= MaxDigits
// and that the rounding mode is known.
func (c Config) Validate() error {
	if err := checkDigits("minimum fraction digits", c.MinFractionDigits); err != nil {
		return err
	}
	if err := checkDigits("maximum fraction digits", c.MaxFractionDigits); err != nil {
		return err
	}
	if c.MaxFractionDigits < c.MinFractionDigits {
		return configErr("maximum fraction digits", c.MaxFractionDigits, "less than minimum fraction digits %d", c.MinFractionDigits)
	}
	if c.RoundingMode > decimal.ToNearestZero {
		return configErr("rounding mode", c.RoundingMode, "unknown mode")
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("{frac:%d..%d mode:%s grouping:%t}",
		c.MinFractionDigits, c.MaxFractionDigits, c.RoundingMode.Name(), c.Grouping)
}

// Config returns f's current configuration.
func (f *Formatter) Config() Config {
	return Config{
		MinFractionDigits: f.minFrac,
		MaxFractionDigits: f.maxFrac,
		RoundingMode:      f.mode,
		Grouping:          f.grouping,
	}
}

// Configure applies c to f. If c is invalid, f is left unchanged.
func (f *Formatter) Configure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f.minFrac, f.maxFrac = c.MinFractionDigits, c.MaxFractionDigits
	f.mode = c.RoundingMode
	f.grouping = c.Grouping
	return nil
}
