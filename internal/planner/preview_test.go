package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePreview_LayoutFollowsTemplate(t *testing.T) {
	tpl := NewTemplate(DefaultConfig()) // (Mon, Morning)
	tpl.AddSlot(4, SegmentEvening)
	exercises := []PreviewExercise{{CatalogID: "cat-1", Name: "Burpees"}}

	p := GeneratePreview(tpl, NewBlackoutSet(), exercises, NewDate(2024, time.January, 3), 2)

	require.Len(t, p.Weeks, 2)
	assert.Equal(t, NewDate(2024, time.January, 1), p.Weeks[0].StartDate, "week starts on the Monday of startDate")
	require.Len(t, p.Weeks[0].Days, 7)

	monday := p.Weeks[0].Days[0]
	require.Len(t, monday.Sessions, 1)
	assert.Equal(t, SegmentMorning, monday.Sessions[0].Segment)
	assert.Equal(t, MustTimeOfDay("06:00"), monday.Sessions[0].Start)

	thursday := p.Weeks[0].Days[3]
	require.Len(t, thursday.Sessions, 1)
	assert.Equal(t, SegmentEvening, thursday.Sessions[0].Segment)

	for _, i := range []int{1, 2, 4, 5, 6} {
		assert.Empty(t, p.Weeks[0].Days[i].Sessions, "day %d has no slot", i+1)
	}
}

func TestGeneratePreview_RoundRobinAcrossSessions(t *testing.T) {
	tpl := NewTemplate(DefaultConfig())
	tpl.AddSlot(3, SegmentMorning)
	exercises := []PreviewExercise{
		{CatalogID: "cat-1", Name: "Burpees"},
		{CatalogID: "cat-2", Name: "Push Ups"},
	}
	p := GeneratePreview(tpl, NewBlackoutSet(), exercises, NewDate(2024, time.January, 1), 1)

	var got []string
	for _, day := range p.Weeks[0].Days {
		for _, s := range day.Sessions {
			for _, e := range s.Exercises {
				got = append(got, e.CatalogID)
			}
		}
	}
	assert.Equal(t, []string{"cat-1", "cat-2"}, got, "selection order drives assignment order")
}

func TestGeneratePreview_SkipsBlackoutDates(t *testing.T) {
	tpl := NewTemplate(DefaultConfig()) // Monday slot
	b := NewBlackoutSet()
	b.Add(NewDate(2024, time.January, 1))
	exercises := []PreviewExercise{{CatalogID: "cat-1", Name: "Burpees"}}

	p := GeneratePreview(tpl, b, exercises, NewDate(2024, time.January, 1), 2)

	assert.Empty(t, p.Weeks[0].Days[0].Sessions, "blackout Monday gets no session")
	require.Len(t, p.Weeks[1].Days[0].Sessions, 1, "next week's Monday is unaffected")
}

func TestGeneratePreview_NoExercisesYieldsEmptyDays(t *testing.T) {
	tpl := NewTemplate(DefaultConfig())
	p := GeneratePreview(tpl, NewBlackoutSet(), nil, NewDate(2024, time.January, 1), 1)
	for _, day := range p.Weeks[0].Days {
		assert.Empty(t, day.Sessions)
	}
}
