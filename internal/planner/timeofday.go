package planner

import (
	"fmt"
)

// TimeOfDay is a clock time expressed as minutes from midnight,
// 0..1439. It carries no date and no timezone.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded "HH:MM" (24-hour clock). The
// whole string must match; trailing input or unpadded fields are
// rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	t := TimeOfDay(h*60 + m)
	if t.String() != s {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return t, nil
}

// MustTimeOfDay is ParseTimeOfDay for compile-time constants in
// configuration defaults and tests; it panics on malformed input.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// AddMinutes returns the time n minutes later. No wrapping: callers
// clamp against segment bounds, which never cross midnight.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

// Minutes returns the raw minutes-from-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}
