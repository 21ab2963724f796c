package planner

// Draft is the single owned state object for one user's in-progress
// plan: the active goal selection, the weekly slot template, the
// blackout set, the ordered exercise selection and the last generated
// preview. Components take the pieces they operate on explicitly;
// nothing in this package reads ambient state.
//
// A Draft is not safe for concurrent use; the owning service
// serializes access.
type Draft struct {
	Goal      GoalSelection
	Template  *Template
	Blackouts *BlackoutSet
	Selection []string // catalog ids, insertion order = display order
	Preview   *Preview
}

// NewDraft creates an empty draft with a default single-slot template.
func NewDraft(cfg Config) *Draft {
	return &Draft{
		Template:  NewTemplate(cfg),
		Blackouts: NewBlackoutSet(),
	}
}

// AddSelection appends a catalog id to the selection unless already
// present; set semantics, add-when-added is a no-op.
func (d *Draft) AddSelection(catalogID string) {
	for _, id := range d.Selection {
		if id == catalogID {
			return
		}
	}
	d.Selection = append(d.Selection, catalogID)
}

// RemoveSelection drops a catalog id; removing an absent id is a no-op.
func (d *Draft) RemoveSelection(catalogID string) {
	for i, id := range d.Selection {
		if id == catalogID {
			d.Selection = append(d.Selection[:i], d.Selection[i+1:]...)
			return
		}
	}
}

// HasSelection reports whether the catalog id is selected.
func (d *Draft) HasSelection(catalogID string) bool {
	for _, id := range d.Selection {
		if id == catalogID {
			return true
		}
	}
	return false
}
