package decimal

import (
	"fmt"
	"strings"
)

// formatting names of rounding modes, indexed by RoundingMode.
var modeNames = [...]string{
	ToNearestEven: "HALF_EVEN",
	ToNearestAway: "HALF_UP",
	ToZero:        "DOWN",
	AwayFromZero:  "UP",
	ToNegativeInf: "FLOOR",
	ToPositiveInf: "CEILING",
	ToNearestZero: "HALF_DOWN",
}

// Name returns the name of the rounding mode as used by number formatting
// libraries: CEILING, FLOOR, UP, DOWN, HALF_UP, HALF_DOWN or HALF_EVEN.
func (m RoundingMode) Name() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return m.String()
}

// ParseRoundingMode returns the rounding mode named s. Both the Go constant
// names (ToNearestEven) and the formatting names (HALF_EVEN) are accepted,
// ignoring case.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m := ToNearestEven; m <= ToNearestZero; m++ {
		if strings.EqualFold(s, modeNames[m]) || strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("decimal: unknown rounding mode %q", s)
}

// MarshalText implements the encoding.TextMarshaler interface. Modes are
// marshaled using their formatting name.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("decimal: invalid rounding mode %d", m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
