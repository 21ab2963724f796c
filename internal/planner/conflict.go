package planner

// NextFreeSegment walks the fixed segment order starting at preferred,
// wrapping once, and returns the first segment not in occupied. When
// every segment is taken it returns preferred unchanged, which callers
// treat as "this weekday is full".
func NextFreeSegment(occupied map[Segment]bool, preferred Segment) Segment {
	start := segmentIndex(preferred)
	if start < 0 {
		start = 0
		preferred = segmentOrder[0]
	}
	for i := 0; i < len(segmentOrder); i++ {
		s := segmentOrder[(start+i)%len(segmentOrder)]
		if !occupied[s] {
			return s
		}
	}
	return preferred
}

// IsWeekdayFull reports whether all three segments of a weekday are
// occupied.
func IsWeekdayFull(occupied map[Segment]bool) bool {
	for _, s := range segmentOrder {
		if !occupied[s] {
			return false
		}
	}
	return true
}

// NextFreeWeekday walks weekdays 1..7 starting at startWeekday,
// wrapping once, and returns the first weekday with any free segment.
// A template occupying all 21 weekday/segment pairs returns
// startWeekday unchanged; that state is unreachable through the
// editor but the search must terminate regardless.
func NextFreeWeekday(occupancy map[int]map[Segment]bool, startWeekday int) int {
	if startWeekday < 1 || startWeekday > 7 {
		startWeekday = 1
	}
	for i := 0; i < 7; i++ {
		d := (startWeekday-1+i)%7 + 1
		if !IsWeekdayFull(occupancy[d]) {
			return d
		}
	}
	return startWeekday
}
