package planner

import "fmt"

// ResolvedExercise is one exercise of an expanded session with its
// catalog identity settled and its plan-wide display position fixed.
type ResolvedExercise struct {
	CatalogID       string
	Name            string
	Sets            int
	Reps            int
	DurationMinutes int
	VideoRef        string
	Notes           string
	DisplayOrder    int
}

// SessionInstance is one concrete, dated, time-bounded occurrence
// ready for persistence. Date is authoritative; WeekIndex and
// WeekdayNumber are derived from it relative to the canonical start
// and kept for consumers that index by week/day rather than date.
type SessionInstance struct {
	Date          Date
	Segment       Segment
	Start         TimeOfDay
	End           TimeOfDay
	WeekIndex     int // 1-based
	WeekdayNumber int // ISO, Monday=1
	Exercises     []ResolvedExercise
}

// Expansion is the result of expanding a preview: the canonical plan
// start (always a Monday), the ordered session instances, and
// non-fatal warnings for exercises that could not be resolved and
// were dropped.
type Expansion struct {
	CanonicalStart Date
	Sessions       []SessionInstance
	Warnings       []string
}

// CanonicalStart computes the reference Monday for week indexing: the
// Monday on or before the earliest date that actually carries an
// exercise. A preview with no exercises anywhere falls back to the
// first week's nominal start.
func CanonicalStart(p Preview) Date {
	var first Date
	for _, week := range p.Weeks {
		for _, day := range week.Days {
			if !dayPopulated(day) {
				continue
			}
			if first.IsZero() || day.Date.Before(first) {
				first = day.Date
			}
		}
	}
	if first.IsZero() {
		if len(p.Weeks) == 0 {
			return Date{}
		}
		first = p.Weeks[0].StartDate
	}
	return first.MondayOnOrBefore()
}

func dayPopulated(day PreviewDay) bool {
	for _, s := range day.Sessions {
		if len(s.Exercises) > 0 {
			return true
		}
	}
	return false
}

// Expand turns a preview into the flat, dated session list. Iteration
// order is fixed (weeks, then days, then sessions, then exercises, in
// input order), so identical inputs always produce an identical list.
// Days on a blackout date are skipped even though the preview step
// should not have populated them; an exercise the catalog index
// cannot resolve is dropped with a warning and the rest of its day is
// unaffected.
func Expand(p Preview, blackouts *BlackoutSet, index *CatalogIndex) Expansion {
	result := Expansion{CanonicalStart: CanonicalStart(p)}
	displayOrder := 0
	for _, week := range p.Weeks {
		for _, day := range week.Days {
			if blackouts.Contains(day.Date) {
				continue
			}
			for _, session := range day.Sessions {
				instance := SessionInstance{
					Date:          day.Date,
					Segment:       session.Segment,
					Start:         session.Start,
					End:           session.End,
					WeekIndex:     DaysBetween(result.CanonicalStart, day.Date)/7 + 1,
					WeekdayNumber: day.Date.ISOWeekday(),
				}
				for _, entry := range session.Exercises {
					catalogID, ok := index.Resolve(entry)
					if !ok {
						result.Warnings = append(result.Warnings,
							fmt.Sprintf("exercise %q on %s could not be matched to the catalog and was dropped", entry.Name, day.Date))
						continue
					}
					displayOrder++
					instance.Exercises = append(instance.Exercises, ResolvedExercise{
						CatalogID:       catalogID,
						Name:            entry.Name,
						Sets:            entry.Sets,
						Reps:            entry.Reps,
						DurationMinutes: entry.DurationMinutes,
						VideoRef:        entry.VideoRef,
						Notes:           entry.Notes,
						DisplayOrder:    displayOrder,
					})
				}
				if len(instance.Exercises) > 0 {
					result.Sessions = append(result.Sessions, instance)
				}
			}
		}
	}
	return result
}
