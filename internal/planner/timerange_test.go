package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"full segment", "06:00", "12:00", true},
		{"typical slot", "07:00", "08:00", true},
		{"exactly min duration", "07:00", "07:30", true},
		{"below min duration", "07:00", "07:15", false},
		{"start before segment", "05:00", "07:00", false},
		{"end past segment", "11:00", "12:30", false},
		{"inverted", "09:00", "08:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.IsValid(SegmentMorning, MustTimeOfDay(tc.start), MustTimeOfDay(tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClamp_StartOutsideBounds(t *testing.T) {
	cfg := DefaultConfig()
	start, end := cfg.Clamp(SegmentMorning, MustTimeOfDay("05:00"), MustTimeOfDay("07:00"))
	assert.Equal(t, MustTimeOfDay("06:00"), start)
	assert.Equal(t, MustTimeOfDay("07:00"), end)
}

func TestClamp_EndBeforeStart(t *testing.T) {
	cfg := DefaultConfig()
	start, end := cfg.Clamp(SegmentMorning, MustTimeOfDay("08:00"), MustTimeOfDay("07:00"))
	assert.Equal(t, MustTimeOfDay("08:00"), start)
	assert.Equal(t, MustTimeOfDay("08:30"), end, "end recomputed as start+minDuration")
}

func TestClamp_StartTooCloseToMax(t *testing.T) {
	cfg := DefaultConfig()
	// Start at 11:45 leaves only 15 minutes; the window must be pushed
	// back so a minimum-length slot still fits.
	start, end := cfg.Clamp(SegmentMorning, MustTimeOfDay("11:45"), MustTimeOfDay("12:30"))
	assert.Equal(t, MustTimeOfDay("11:30"), start)
	assert.Equal(t, MustTimeOfDay("12:00"), end)
}

func TestClamp_AlwaysProducesValidWindow(t *testing.T) {
	cfg := DefaultConfig()
	for _, seg := range Segments() {
		for start := TimeOfDay(0); start < 24*60; start += 37 {
			for end := TimeOfDay(0); end < 24*60; end += 53 {
				s, e := cfg.Clamp(seg, start, end)
				assert.True(t, cfg.IsValid(seg, s, e),
					"segment=%s start=%s end=%s -> %s..%s", seg, start, end, s, e)
			}
		}
	}
}
