package planner

// Segment is one of the three fixed time-of-day windows a workout
// session can be placed in.
type Segment string

const (
	SegmentMorning   Segment = "morning"
	SegmentAfternoon Segment = "afternoon"
	SegmentEvening   Segment = "evening"
)

// segmentOrder is the fixed iteration order used by the conflict
// resolver's wrap-around search.
var segmentOrder = [...]Segment{SegmentMorning, SegmentAfternoon, SegmentEvening}

// Segments returns the segments in their fixed order.
func Segments() []Segment {
	return segmentOrder[:]
}

// IsValidSegment reports whether s names one of the three segments.
func IsValidSegment(s Segment) bool {
	return segmentIndex(s) >= 0
}

func segmentIndex(s Segment) int {
	for i, seg := range segmentOrder {
		if seg == s {
			return i
		}
	}
	return -1
}

// SegmentBounds is the fixed [Min, Max] window of a segment. A slot
// in the segment must fit entirely inside it.
type SegmentBounds struct {
	Min TimeOfDay
	Max TimeOfDay
}

// Config holds the tunables of the planning core: per-segment bounds,
// the minimum slot duration and the default length of a fresh slot.
type Config struct {
	Bounds          map[Segment]SegmentBounds
	MinDuration     int // minutes
	DefaultDuration int // minutes, length of a newly created slot
}

// DefaultConfig returns the stock segment layout: morning 06:00-12:00,
// afternoon 12:00-18:00, evening 18:00-23:00, 30 minute minimum and
// 60 minute default slots.
func DefaultConfig() Config {
	return Config{
		Bounds: map[Segment]SegmentBounds{
			SegmentMorning:   {Min: MustTimeOfDay("06:00"), Max: MustTimeOfDay("12:00")},
			SegmentAfternoon: {Min: MustTimeOfDay("12:00"), Max: MustTimeOfDay("18:00")},
			SegmentEvening:   {Min: MustTimeOfDay("18:00"), Max: MustTimeOfDay("23:00")},
		},
		MinDuration:     30,
		DefaultDuration: 60,
	}
}

// BoundsOf returns the fixed bounds of a segment.
func (c Config) BoundsOf(segment Segment) SegmentBounds {
	return c.Bounds[segment]
}

// defaultWindow is the window a freshly created slot receives:
// segment min to min+DefaultDuration, capped at the segment max.
func (c Config) defaultWindow(segment Segment) (TimeOfDay, TimeOfDay) {
	b := c.Bounds[segment]
	end := b.Min.AddMinutes(c.DefaultDuration)
	if end > b.Max {
		end = b.Max
	}
	return b.Min, end
}
