package planner

import "sort"

// PreviewExercise is one exercise entry laid onto a preview day.
// CatalogID is carried from the moment the exercise is chosen so the
// expander never has to guess identity from the name.
type PreviewExercise struct {
	CatalogID       string
	Name            string
	Sets            int
	Reps            int
	DurationMinutes int
	VideoRef        string
	Notes           string
}

// PreviewSession is one time-bounded session on a preview day.
type PreviewSession struct {
	Segment   Segment
	Start     TimeOfDay
	End       TimeOfDay
	Exercises []PreviewExercise
}

// PreviewDay is one dated day of a preview week. Days with no
// sessions are still present so the calendar renders a full week.
type PreviewDay struct {
	Date     Date
	Sessions []PreviewSession
}

// PreviewWeek is one calendar week of the preview, Monday-first.
type PreviewWeek struct {
	StartDate Date // always a Monday
	Days      []PreviewDay
}

// Preview is the full multi-week calendar layout the expander
// consumes. It is regenerated from scratch on every change; nothing
// edits a preview in place.
type Preview struct {
	Weeks []PreviewWeek
}

// GeneratePreview lays the chosen exercises onto concrete calendar
// days: for each week starting at the Monday of startDate, each
// template slot becomes a session on its weekday, and the exercises
// are dealt across the sessions round-robin in selection order.
// Blackout dates receive no sessions. The output is fully determined
// by the inputs.
func GeneratePreview(template *Template, blackouts *BlackoutSet, exercises []PreviewExercise, startDate Date, weeks int) Preview {
	if weeks < 1 {
		weeks = 1
	}
	slots := template.Slots()
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		return segmentIndex(slots[i].Segment) < segmentIndex(slots[j].Segment)
	})

	firstMonday := startDate.MondayOnOrBefore()
	var p Preview
	exIdx := 0
	for w := 0; w < weeks; w++ {
		weekStart := firstMonday.AddDays(w * 7)
		week := PreviewWeek{StartDate: weekStart}
		for wd := 1; wd <= 7; wd++ {
			day := PreviewDay{Date: weekStart.AddDays(wd - 1)}
			if !blackouts.Contains(day.Date) {
				for _, slot := range slots {
					if slot.Weekday != wd || len(exercises) == 0 {
						continue
					}
					session := PreviewSession{
						Segment:   slot.Segment,
						Start:     slot.Start,
						End:       slot.End,
						Exercises: []PreviewExercise{exercises[exIdx%len(exercises)]},
					}
					exIdx++
					day.Sessions = append(day.Sessions, session)
				}
			}
			week.Days = append(week.Days, day)
		}
		p.Weeks = append(p.Weeks, week)
	}
	return p
}
