package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFreeSegment(t *testing.T) {
	cases := []struct {
		name      string
		occupied  map[Segment]bool
		preferred Segment
		want      Segment
	}{
		{"all free returns preferred", nil, SegmentAfternoon, SegmentAfternoon},
		{"preferred taken moves forward",
			map[Segment]bool{SegmentMorning: true}, SegmentMorning, SegmentAfternoon},
		{"wraps around",
			map[Segment]bool{SegmentEvening: true}, SegmentEvening, SegmentMorning},
		{"wraps past two taken",
			map[Segment]bool{SegmentAfternoon: true, SegmentEvening: true}, SegmentAfternoon, SegmentMorning},
		{"all taken returns preferred unchanged",
			map[Segment]bool{SegmentMorning: true, SegmentAfternoon: true, SegmentEvening: true},
			SegmentAfternoon, SegmentAfternoon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextFreeSegment(tc.occupied, tc.preferred)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextFreeSegment_NeverReturnsOccupiedWhenFree(t *testing.T) {
	// For every occupancy subset with at least one free segment, the
	// result must not be in the occupied set.
	for mask := 0; mask < 7; mask++ { // 7 excludes the all-occupied case
		occupied := make(map[Segment]bool)
		for i, s := range Segments() {
			if mask&(1<<i) != 0 {
				occupied[s] = true
			}
		}
		for _, preferred := range Segments() {
			got := NextFreeSegment(occupied, preferred)
			assert.False(t, occupied[got], "mask=%d preferred=%s got=%s", mask, preferred, got)
		}
	}
}

func TestIsWeekdayFull(t *testing.T) {
	assert.False(t, IsWeekdayFull(nil))
	assert.False(t, IsWeekdayFull(map[Segment]bool{SegmentMorning: true}))
	assert.True(t, IsWeekdayFull(map[Segment]bool{
		SegmentMorning: true, SegmentAfternoon: true, SegmentEvening: true,
	}))
}

func fullDay() map[Segment]bool {
	return map[Segment]bool{SegmentMorning: true, SegmentAfternoon: true, SegmentEvening: true}
}

func TestNextFreeWeekday(t *testing.T) {
	occ := map[int]map[Segment]bool{1: fullDay()}
	assert.Equal(t, 2, NextFreeWeekday(occ, 1))

	// Wraps past Sunday back to Monday.
	occ = map[int]map[Segment]bool{6: fullDay(), 7: fullDay()}
	assert.Equal(t, 1, NextFreeWeekday(occ, 6))

	// Every weekday full returns the start unchanged.
	occ = make(map[int]map[Segment]bool)
	for d := 1; d <= 7; d++ {
		occ[d] = fullDay()
	}
	assert.Equal(t, 4, NextFreeWeekday(occ, 4))
}

func TestNextFreeWeekday_Deterministic(t *testing.T) {
	occ := map[int]map[Segment]bool{
		2: fullDay(),
		3: {SegmentMorning: true},
	}
	first := NextFreeWeekday(occ, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NextFreeWeekday(occ, 2))
	}
	assert.Equal(t, 3, first, "weekday 3 has a free segment and comes first after 2")
}
