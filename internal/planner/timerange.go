package planner

// Clamp corrects a (start, end) window against the bounds of a
// segment and the minimum duration. A start outside [min, max) is
// reset to the segment min. An end at or before start, past the
// segment max, or leaving less than the minimum duration is
// recomputed as start+MinDuration; if that overruns the segment, the
// whole window is pushed back to [max-MinDuration, max], never below
// the segment min.
// Clamp always returns a window for which IsValid holds (assuming the
// segment itself can hold a minimum-length slot).
func (c Config) Clamp(segment Segment, start, end TimeOfDay) (TimeOfDay, TimeOfDay) {
	b := c.Bounds[segment]
	if start < b.Min || start >= b.Max {
		start = b.Min
	}
	if end <= start || end > b.Max || end.Minutes()-start.Minutes() < c.MinDuration {
		end = start.AddMinutes(c.MinDuration)
		if end > b.Max {
			// Even a minimum-length slot does not fit after start.
			end = b.Max
			start = b.Max.AddMinutes(-c.MinDuration)
			if start < b.Min {
				start = b.Min
			}
		}
	}
	return start, end
}

// IsValid reports whether the window fits the segment bounds and
// meets the minimum duration.
func (c Config) IsValid(segment Segment, start, end TimeOfDay) bool {
	b := c.Bounds[segment]
	return b.Min <= start && start < end && end <= b.Max &&
		end.Minutes()-start.Minutes() >= c.MinDuration
}
