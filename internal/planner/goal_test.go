package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_WeightLossOnOff(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle(TagWeightLoss))
	assert.True(t, g.IsSelected(TagWeightLoss))
	assert.Equal(t, "weight_loss", g.TypeName())

	require.NoError(t, g.Toggle(TagWeightLoss))
	assert.False(t, g.Active())
	assert.Empty(t, g.TypeName())
}

func TestToggle_WeightLossClearsMuscleGroups(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle("chest"))
	require.NoError(t, g.Toggle("back"))

	require.NoError(t, g.Toggle(TagWeightLoss))
	assert.True(t, g.IsSelected(TagWeightLoss))
	assert.False(t, g.IsSelected("chest"))
	assert.False(t, g.IsSelected("back"))
	assert.Equal(t, []GoalTag{TagWeightLoss}, g.Tags())
}

func TestToggle_MuscleGroupWhileWeightLossRejected(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle(TagWeightLoss))

	err := g.Toggle("legs")
	assert.ErrorIs(t, err, ErrSelectionConflict)
	assert.True(t, g.IsSelected(TagWeightLoss), "state unchanged")
	assert.False(t, g.IsSelected("legs"))
}

func TestToggle_ThirdMuscleGroupRejected(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle("chest"))
	require.NoError(t, g.Toggle("back"))

	err := g.Toggle("legs")
	assert.ErrorIs(t, err, ErrSelectionLimitExceeded)
	assert.Equal(t, []GoalTag{"chest", "back"}, g.Tags(), "state unchanged")

	// Toggling an already-selected tag is removal and succeeds.
	require.NoError(t, g.Toggle("chest"))
	assert.Equal(t, []GoalTag{"back"}, g.Tags())

	// With a seat free, the third tag is now accepted.
	require.NoError(t, g.Toggle("legs"))
	assert.Equal(t, []GoalTag{"back", "legs"}, g.Tags())
}

func TestToggle_ShrinkToEmpty(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle("chest"))
	require.NoError(t, g.Toggle("chest"))
	assert.False(t, g.Active())
}

func TestIsDisabled_MirrorsToggleGuards(t *testing.T) {
	var g GoalSelection
	assert.False(t, g.IsDisabled(TagWeightLoss))
	assert.False(t, g.IsDisabled("chest"))

	require.NoError(t, g.Toggle(TagWeightLoss))
	assert.True(t, g.IsDisabled("chest"), "muscle tags disabled while weight loss active")
	assert.False(t, g.IsDisabled(TagWeightLoss))

	require.NoError(t, g.Toggle(TagWeightLoss))
	require.NoError(t, g.Toggle("chest"))
	require.NoError(t, g.Toggle("back"))
	assert.True(t, g.IsDisabled("legs"), "third distinct tag disabled")
	assert.False(t, g.IsDisabled("chest"), "selected tags stay enabled for removal")
}

func TestTypeName_MuscleGroups(t *testing.T) {
	var g GoalSelection
	require.NoError(t, g.Toggle("chest"))
	assert.Equal(t, "chest", g.TypeName())
	require.NoError(t, g.Toggle("back"))
	assert.Equal(t, "chest+back", g.TypeName(), "insertion order")
}
