package planner

import (
	"github.com/google/uuid"
)

// WeeklySlot is one recurring (weekday, segment, time window) entry
// in the availability template. Weekday is ISO: Monday=1 .. Sunday=7.
type WeeklySlot struct {
	ID      string
	Weekday int
	Segment Segment
	Start   TimeOfDay
	End     TimeOfDay
}

// Template is the ordered collection of weekly slots. All mutations
// go through the editor methods below, which keep two invariants: no
// two slots share a (weekday, segment) pair, and at least one slot
// exists at all times.
type Template struct {
	cfg   Config
	slots []WeeklySlot
}

// NewTemplate creates a template seeded with a single slot at Monday
// morning, so the at-least-one-slot invariant holds from the start.
func NewTemplate(cfg Config) *Template {
	t := &Template{cfg: cfg}
	t.AddSlot(1, SegmentMorning)
	return t
}

// Slots returns a copy of the slots in insertion order.
func (t *Template) Slots() []WeeklySlot {
	out := make([]WeeklySlot, len(t.slots))
	copy(out, t.slots)
	return out
}

// SlotByID returns the slot with the given id.
func (t *Template) SlotByID(id string) (WeeklySlot, error) {
	for _, s := range t.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return WeeklySlot{}, ErrSlotNotFound
}

// occupancy maps weekday -> occupied segments, optionally ignoring
// one slot (the one being edited).
func (t *Template) occupancy(excludeID string) map[int]map[Segment]bool {
	occ := make(map[int]map[Segment]bool)
	for _, s := range t.slots {
		if s.ID == excludeID {
			continue
		}
		if occ[s.Weekday] == nil {
			occ[s.Weekday] = make(map[Segment]bool)
		}
		occ[s.Weekday][s.Segment] = true
	}
	return occ
}

// AddSlot creates a new slot at (weekday, segment) with the segment's
// default window. If the pair is taken, the slot silently lands on
// the next free segment of that weekday; if the whole weekday is
// full, on the next weekday with a free segment. AddSlot never fails:
// with 21 possible pairs there is always room for a realistic
// template.
func (t *Template) AddSlot(weekday int, segment Segment) WeeklySlot {
	if weekday < 1 || weekday > 7 {
		weekday = 1
	}
	if segmentIndex(segment) < 0 {
		segment = SegmentMorning
	}
	occ := t.occupancy("")
	if occ[weekday][segment] {
		if IsWeekdayFull(occ[weekday]) {
			weekday = NextFreeWeekday(occ, weekday)
		}
		segment = NextFreeSegment(occ[weekday], segment)
	}
	start, end := t.cfg.defaultWindow(segment)
	slot := WeeklySlot{
		ID:      uuid.NewString(),
		Weekday: weekday,
		Segment: segment,
		Start:   start,
		End:     end,
	}
	t.slots = append(t.slots, slot)
	return slot
}

// ChangeWeekday moves a slot to another weekday. When the slot's
// segment is taken on the target weekday by a different slot, the
// segment is silently reassigned via NextFreeSegment (mirroring
// AddSlot) and the window resets to the new segment's defaults. A
// target weekday with every segment taken fails with ErrSlotConflict.
func (t *Template) ChangeWeekday(slotID string, newWeekday int) (WeeklySlot, error) {
	idx := t.indexOf(slotID)
	if idx < 0 {
		return WeeklySlot{}, ErrSlotNotFound
	}
	if newWeekday < 1 || newWeekday > 7 {
		return WeeklySlot{}, ErrSlotConflict
	}
	slot := t.slots[idx]
	occ := t.occupancy(slotID)
	segment := slot.Segment
	if occ[newWeekday][segment] {
		if IsWeekdayFull(occ[newWeekday]) {
			return WeeklySlot{}, ErrSlotConflict
		}
		segment = NextFreeSegment(occ[newWeekday], segment)
		slot.Start, slot.End = t.cfg.defaultWindow(segment)
	}
	slot.Weekday = newWeekday
	slot.Segment = segment
	t.slots[idx] = slot
	return slot, nil
}

// ChangeSegment moves a slot to another segment on its weekday. A
// collision with a different slot fails outright with ErrSlotConflict
// rather than silently reassigning; moving a slot to an explicitly
// chosen segment that is taken has no obvious "next best" the user
// asked for. On success the window is kept when still valid for the
// new segment, otherwise reset to the segment's defaults.
func (t *Template) ChangeSegment(slotID string, newSegment Segment) (WeeklySlot, error) {
	idx := t.indexOf(slotID)
	if idx < 0 {
		return WeeklySlot{}, ErrSlotNotFound
	}
	if segmentIndex(newSegment) < 0 {
		return WeeklySlot{}, ErrTimeRangeInvalid
	}
	slot := t.slots[idx]
	occ := t.occupancy(slotID)
	if occ[slot.Weekday][newSegment] {
		return WeeklySlot{}, ErrSlotConflict
	}
	slot.Segment = newSegment
	if !t.cfg.IsValid(newSegment, slot.Start, slot.End) {
		slot.Start, slot.End = t.cfg.defaultWindow(newSegment)
	}
	t.slots[idx] = slot
	return slot, nil
}

// ChangeStart moves a slot's start time. Out-of-bounds values are
// clamped, and the end is pushed forward (capped at the segment max)
// when the new start leaves less than the minimum duration. This
// never fails: every input has a deterministic correction.
func (t *Template) ChangeStart(slotID string, newStart TimeOfDay) (WeeklySlot, error) {
	idx := t.indexOf(slotID)
	if idx < 0 {
		return WeeklySlot{}, ErrSlotNotFound
	}
	slot := t.slots[idx]
	slot.Start, slot.End = t.cfg.Clamp(slot.Segment, newStart, slot.End)
	t.slots[idx] = slot
	return slot, nil
}

// ChangeEnd moves a slot's end time. The end is clamped into the
// segment, and the start is pulled back (floored at the segment min)
// when the new end leaves less than the minimum duration.
func (t *Template) ChangeEnd(slotID string, newEnd TimeOfDay) (WeeklySlot, error) {
	idx := t.indexOf(slotID)
	if idx < 0 {
		return WeeklySlot{}, ErrSlotNotFound
	}
	slot := t.slots[idx]
	b := t.cfg.BoundsOf(slot.Segment)
	end := newEnd
	if end > b.Max {
		end = b.Max
	}
	if end < b.Min.AddMinutes(t.cfg.MinDuration) {
		end = b.Min.AddMinutes(t.cfg.MinDuration)
	}
	start := slot.Start
	if end.Minutes()-start.Minutes() < t.cfg.MinDuration {
		start = end.AddMinutes(-t.cfg.MinDuration)
		if start < b.Min {
			start = b.Min
		}
	}
	slot.Start = start
	slot.End = end
	t.slots[idx] = slot
	return slot, nil
}

// RemoveSlot deletes a slot. Removing the last remaining slot fails
// with ErrMinimumSlotsRequired and leaves the template unchanged.
func (t *Template) RemoveSlot(slotID string) error {
	idx := t.indexOf(slotID)
	if idx < 0 {
		return ErrSlotNotFound
	}
	if len(t.slots) == 1 {
		return ErrMinimumSlotsRequired
	}
	t.slots = append(t.slots[:idx], t.slots[idx+1:]...)
	return nil
}

func (t *Template) indexOf(slotID string) int {
	for i, s := range t.slots {
		if s.ID == slotID {
			return i
		}
	}
	return -1
}
