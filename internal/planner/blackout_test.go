package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackoutSet_SingleDates(t *testing.T) {
	b := NewBlackoutSet()
	d := NewDate(2024, time.July, 4)
	assert.False(t, b.Contains(d))

	b.Add(d)
	assert.True(t, b.Contains(d))

	b.Remove(d)
	assert.False(t, b.Contains(d))
}

func TestBlackoutSet_RuleGroupRemoval(t *testing.T) {
	b := NewBlackoutSet()
	dates := []Date{
		NewDate(2024, time.December, 24),
		NewDate(2024, time.December, 25),
		NewDate(2024, time.December, 26),
	}
	rule := b.AddRule("christmas", dates...)
	require.NotEmpty(t, rule.ID)
	for _, d := range dates {
		assert.True(t, b.Contains(d))
	}

	require.NoError(t, b.RemoveRule(rule.ID))
	for _, d := range dates {
		assert.False(t, b.Contains(d), "rule removal drops the whole group")
	}
	assert.ErrorIs(t, b.RemoveRule(rule.ID), ErrBlackoutRuleNotFound)
}

func TestBlackoutSet_RuleDoesNotShadowSingleDate(t *testing.T) {
	b := NewBlackoutSet()
	d := NewDate(2024, time.May, 1)
	b.Add(d)
	rule := b.AddRule("labour day", d)

	require.NoError(t, b.RemoveRule(rule.ID))
	assert.True(t, b.Contains(d), "individually added date survives rule removal")
}

func TestBlackoutSet_DatesSortedAndDeduplicated(t *testing.T) {
	b := NewBlackoutSet()
	b.Add(NewDate(2024, time.March, 10))
	b.Add(NewDate(2024, time.January, 2))
	b.AddRule("overlap", NewDate(2024, time.March, 10), NewDate(2024, time.February, 5))

	got := b.Dates()
	want := []Date{
		NewDate(2024, time.January, 2),
		NewDate(2024, time.February, 5),
		NewDate(2024, time.March, 10),
	}
	assert.Equal(t, want, got)
}

func TestBlackoutSet_CloneIsIndependent(t *testing.T) {
	b := NewBlackoutSet()
	kept := NewDate(2024, time.June, 1)
	b.Add(kept)
	rule := b.AddRule("midsummer", NewDate(2024, time.June, 21))

	snapshot := b.Clone()

	b.Remove(kept)
	require.NoError(t, b.RemoveRule(rule.ID))
	b.Add(NewDate(2024, time.August, 9))

	assert.True(t, snapshot.Contains(kept), "clone keeps the removed date")
	assert.True(t, snapshot.Contains(NewDate(2024, time.June, 21)), "clone keeps the removed rule")
	assert.False(t, snapshot.Contains(NewDate(2024, time.August, 9)), "clone does not see later additions")
	assert.Len(t, snapshot.Rules(), 1)
}

func TestBlackoutSet_NilContains(t *testing.T) {
	var b *BlackoutSet
	assert.False(t, b.Contains(NewDate(2024, time.January, 1)))
}
