package planner

import "strings"

// GoalTag identifies one selectable training-goal tag: the weight
// loss goal, or a muscle group such as "chest" or "back".
type GoalTag string

// TagWeightLoss is the dedicated weight-loss goal tag. Every other
// tag value is treated as a muscle group.
const TagWeightLoss GoalTag = "weight_loss"

// MaxMuscleGroups is the ceiling on simultaneously active muscle
// group tags.
const MaxMuscleGroups = 2

// GoalSelection is the state machine over the active training goal.
// Valid states: nothing selected, weight loss selected, or one..two
// muscle group tags selected. Weight loss and muscle groups are
// mutually exclusive.
type GoalSelection struct {
	weightLoss bool
	muscles    []GoalTag // insertion order
}

// Toggle flips a tag's membership in the selection.
//
// Weight loss always succeeds: toggling it on clears any muscle
// group tags, toggling it off empties the selection. A muscle group
// tag is rejected with ErrSelectionConflict while weight loss is
// active, removed if already selected, and rejected with
// ErrSelectionLimitExceeded when a third distinct tag is attempted.
// On error the selection is unchanged.
func (g *GoalSelection) Toggle(tag GoalTag) error {
	if tag == TagWeightLoss {
		if g.weightLoss {
			g.weightLoss = false
			return nil
		}
		g.weightLoss = true
		g.muscles = nil
		return nil
	}
	if g.weightLoss {
		return ErrSelectionConflict
	}
	for i, m := range g.muscles {
		if m == tag {
			g.muscles = append(g.muscles[:i], g.muscles[i+1:]...)
			return nil
		}
	}
	if len(g.muscles) >= MaxMuscleGroups {
		return ErrSelectionLimitExceeded
	}
	g.muscles = append(g.muscles, tag)
	return nil
}

// IsDisabled mirrors Toggle's guards without mutating: true when a
// Toggle(tag) call would be rejected. Used to gate interaction before
// it is attempted.
func (g *GoalSelection) IsDisabled(tag GoalTag) bool {
	if tag == TagWeightLoss {
		return false
	}
	if g.weightLoss {
		return true
	}
	if g.IsSelected(tag) {
		return false
	}
	return len(g.muscles) >= MaxMuscleGroups
}

// IsSelected reports whether the tag is currently active.
func (g *GoalSelection) IsSelected(tag GoalTag) bool {
	if tag == TagWeightLoss {
		return g.weightLoss
	}
	for _, m := range g.muscles {
		if m == tag {
			return true
		}
	}
	return false
}

// Active reports whether any goal is selected.
func (g *GoalSelection) Active() bool {
	return g.weightLoss || len(g.muscles) > 0
}

// Tags returns the active tags in insertion order.
func (g *GoalSelection) Tags() []GoalTag {
	if g.weightLoss {
		return []GoalTag{TagWeightLoss}
	}
	out := make([]GoalTag, len(g.muscles))
	copy(out, g.muscles)
	return out
}

// TypeName is the canonical goal-type name used for the lazy
// get-or-create upsert: "weight_loss", or the muscle tags joined with
// "+" in insertion order (e.g. "chest+back"). Empty when nothing is
// selected.
func (g *GoalSelection) TypeName() string {
	if g.weightLoss {
		return string(TagWeightLoss)
	}
	if len(g.muscles) == 0 {
		return ""
	}
	parts := make([]string, len(g.muscles))
	for i, m := range g.muscles {
		parts[i] = string(m)
	}
	return strings.Join(parts, "+")
}
