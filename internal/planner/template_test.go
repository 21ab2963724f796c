package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTemplate(t *testing.T) *Template {
	t.Helper()
	return NewTemplate(DefaultConfig())
}

func TestNewTemplate_SeedsOneSlot(t *testing.T) {
	tpl := newTestTemplate(t)
	slots := tpl.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, 1, slots[0].Weekday)
	assert.Equal(t, SegmentMorning, slots[0].Segment)
	assert.Equal(t, MustTimeOfDay("06:00"), slots[0].Start)
	assert.Equal(t, MustTimeOfDay("07:00"), slots[0].End)
}

func TestAddSlot_ConflictMovesToNextSegment(t *testing.T) {
	// Template already holds (Mon, Morning); adding the same pair must
	// land on (Mon, Afternoon) with afternoon defaults, leaving the
	// original slot untouched.
	tpl := newTestTemplate(t)
	original := tpl.Slots()[0]
	_, err := tpl.ChangeStart(original.ID, MustTimeOfDay("07:00"))
	require.NoError(t, err)

	added := tpl.AddSlot(1, SegmentMorning)
	assert.Equal(t, 1, added.Weekday)
	assert.Equal(t, SegmentAfternoon, added.Segment)
	assert.Equal(t, MustTimeOfDay("12:00"), added.Start)
	assert.Equal(t, MustTimeOfDay("13:00"), added.End)

	kept, err := tpl.SlotByID(original.ID)
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("07:00"), kept.Start)
	assert.Equal(t, SegmentMorning, kept.Segment)
}

func TestAddSlot_FullWeekdayMovesToNextWeekday(t *testing.T) {
	tpl := newTestTemplate(t) // (Mon, Morning)
	tpl.AddSlot(1, SegmentAfternoon)
	tpl.AddSlot(1, SegmentEvening)

	added := tpl.AddSlot(1, SegmentMorning)
	assert.Equal(t, 2, added.Weekday, "Monday is full, lands on Tuesday")
	assert.Equal(t, SegmentMorning, added.Segment)
	assert.Equal(t, MustTimeOfDay("06:00"), added.Start)
	assert.Equal(t, MustTimeOfDay("07:00"), added.End)
}

func TestAddSlot_NeverDuplicatesPair(t *testing.T) {
	tpl := newTestTemplate(t)
	// Hammer the same preferred pair far beyond one week's capacity of
	// that segment.
	for i := 0; i < 20; i++ {
		tpl.AddSlot(3, SegmentEvening)
	}
	seen := make(map[[2]string]bool)
	for _, s := range tpl.Slots() {
		key := [2]string{string(rune('0' + s.Weekday)), string(s.Segment)}
		assert.False(t, seen[key], "duplicate pair weekday=%d segment=%s", s.Weekday, s.Segment)
		seen[key] = true
	}
	assert.Len(t, tpl.Slots(), 21, "template saturates at 21 pairs")
}

func TestChangeWeekday_FreeTargetKeepsSegmentAndWindow(t *testing.T) {
	tpl := newTestTemplate(t)
	slot := tpl.Slots()[0]
	_, err := tpl.ChangeStart(slot.ID, MustTimeOfDay("08:00"))
	require.NoError(t, err)

	moved, err := tpl.ChangeWeekday(slot.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, moved.Weekday)
	assert.Equal(t, SegmentMorning, moved.Segment)
	assert.Equal(t, MustTimeOfDay("08:00"), moved.Start)
}

func TestChangeWeekday_ConflictReassignsSegment(t *testing.T) {
	tpl := newTestTemplate(t)           // (Mon, Morning)
	other := tpl.AddSlot(2, SegmentMorning) // (Tue, Morning)

	moved, err := tpl.ChangeWeekday(tpl.Slots()[0].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Weekday)
	assert.Equal(t, SegmentAfternoon, moved.Segment, "silently reassigned")
	assert.Equal(t, MustTimeOfDay("12:00"), moved.Start, "window reset to new segment defaults")

	// The slot already on Tuesday morning is untouched.
	kept, err := tpl.SlotByID(other.ID)
	require.NoError(t, err)
	assert.Equal(t, SegmentMorning, kept.Segment)
}

func TestChangeWeekday_FullTargetFails(t *testing.T) {
	tpl := newTestTemplate(t)
	tpl.AddSlot(2, SegmentMorning)
	tpl.AddSlot(2, SegmentAfternoon)
	tpl.AddSlot(2, SegmentEvening)

	_, err := tpl.ChangeWeekday(tpl.Slots()[0].ID, 2)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestChangeSegment_ConflictFailsWithoutReassigning(t *testing.T) {
	// Unlike AddSlot/ChangeWeekday, an explicit segment change onto an
	// occupied pair is rejected outright.
	tpl := newTestTemplate(t)
	slot := tpl.AddSlot(1, SegmentAfternoon)

	_, err := tpl.ChangeSegment(slot.ID, SegmentMorning)
	assert.ErrorIs(t, err, ErrSlotConflict)

	unchanged, err := tpl.SlotByID(slot.ID)
	require.NoError(t, err)
	assert.Equal(t, SegmentAfternoon, unchanged.Segment, "state unchanged on conflict")
}

func TestChangeSegment_ResetsInvalidWindow(t *testing.T) {
	tpl := newTestTemplate(t)
	slot := tpl.Slots()[0] // morning 06:00-07:00, invalid for evening

	changed, err := tpl.ChangeSegment(slot.ID, SegmentEvening)
	require.NoError(t, err)
	assert.Equal(t, SegmentEvening, changed.Segment)
	assert.Equal(t, MustTimeOfDay("18:00"), changed.Start)
	assert.Equal(t, MustTimeOfDay("19:00"), changed.End)
}

func TestChangeStart_PushesEndForward(t *testing.T) {
	tpl := newTestTemplate(t) // 06:00-07:00
	slot := tpl.Slots()[0]

	changed, err := tpl.ChangeStart(slot.ID, MustTimeOfDay("06:20"))
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("06:20"), changed.Start)
	assert.Equal(t, MustTimeOfDay("07:00"), changed.End, "still >= min duration, end untouched")

	changed, err = tpl.ChangeStart(slot.ID, MustTimeOfDay("06:50"))
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("07:20"), changed.End, "end pushed to keep min duration")
}

func TestChangeEnd_PullsStartBack(t *testing.T) {
	tpl := newTestTemplate(t)
	slot := tpl.Slots()[0]
	_, err := tpl.ChangeStart(slot.ID, MustTimeOfDay("08:00"))
	require.NoError(t, err)

	changed, err := tpl.ChangeEnd(slot.ID, MustTimeOfDay("08:15"))
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("08:15"), changed.End)
	assert.Equal(t, MustTimeOfDay("07:45"), changed.Start, "start pulled back to keep min duration")
}

func TestChangeEnd_ClampedToSegment(t *testing.T) {
	tpl := newTestTemplate(t)
	slot := tpl.Slots()[0]

	changed, err := tpl.ChangeEnd(slot.ID, MustTimeOfDay("15:00"))
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("12:00"), changed.End, "capped at morning max")

	changed, err = tpl.ChangeEnd(slot.ID, MustTimeOfDay("06:05"))
	require.NoError(t, err)
	assert.Equal(t, MustTimeOfDay("06:30"), changed.End, "floored at min+minDuration")
	assert.Equal(t, MustTimeOfDay("06:00"), changed.Start)
}

func TestRemoveSlot_LastSlotFails(t *testing.T) {
	tpl := newTestTemplate(t)
	slot := tpl.Slots()[0]

	err := tpl.RemoveSlot(slot.ID)
	assert.ErrorIs(t, err, ErrMinimumSlotsRequired)
	assert.Len(t, tpl.Slots(), 1, "template unchanged")

	tpl.AddSlot(2, SegmentMorning)
	require.NoError(t, tpl.RemoveSlot(slot.ID))
	assert.Len(t, tpl.Slots(), 1)
}

func TestRemoveSlot_UnknownID(t *testing.T) {
	tpl := newTestTemplate(t)
	tpl.AddSlot(2, SegmentMorning)
	assert.ErrorIs(t, tpl.RemoveSlot("nope"), ErrSlotNotFound)
}
