package planner

import (
	"sort"

	"github.com/google/uuid"
)

// BlackoutRule is a named group of blackout dates added in one
// operation (e.g. a holiday rule), tracked by id so the whole group
// can be removed later.
type BlackoutRule struct {
	ID    string
	Name  string
	Dates []Date
}

// BlackoutSet holds the dates excluded from scheduling: individually
// added dates plus the dates contributed by named rules.
type BlackoutSet struct {
	single map[Date]bool
	rules  map[string]BlackoutRule
	order  []string // rule ids in insertion order
}

func NewBlackoutSet() *BlackoutSet {
	return &BlackoutSet{
		single: make(map[Date]bool),
		rules:  make(map[string]BlackoutRule),
	}
}

// Add excludes a single date.
func (b *BlackoutSet) Add(d Date) {
	b.single[d] = true
}

// Remove drops an individually added date. Dates contributed by a
// rule are only removable through RemoveRule.
func (b *BlackoutSet) Remove(d Date) {
	delete(b.single, d)
}

// AddRule excludes a group of dates under one name and returns the
// rule, whose ID removes the whole group later.
func (b *BlackoutSet) AddRule(name string, dates ...Date) BlackoutRule {
	rule := BlackoutRule{ID: uuid.NewString(), Name: name}
	rule.Dates = append(rule.Dates, dates...)
	b.rules[rule.ID] = rule
	b.order = append(b.order, rule.ID)
	return rule
}

// RemoveRule drops a rule and every date it contributed.
func (b *BlackoutSet) RemoveRule(ruleID string) error {
	if _, ok := b.rules[ruleID]; !ok {
		return ErrBlackoutRuleNotFound
	}
	delete(b.rules, ruleID)
	for i, id := range b.order {
		if id == ruleID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Rules returns the rules in insertion order.
func (b *BlackoutSet) Rules() []BlackoutRule {
	out := make([]BlackoutRule, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.rules[id])
	}
	return out
}

// Clone returns a deep copy sharing no state with the receiver, for
// callers that need a stable snapshot while the original keeps
// taking mutations.
func (b *BlackoutSet) Clone() *BlackoutSet {
	out := NewBlackoutSet()
	for d := range b.single {
		out.single[d] = true
	}
	for id, r := range b.rules {
		rule := BlackoutRule{ID: r.ID, Name: r.Name}
		rule.Dates = append(rule.Dates, r.Dates...)
		out.rules[id] = rule
	}
	out.order = append(out.order, b.order...)
	return out
}

// Contains reports whether the date is excluded, either individually
// or by any rule.
func (b *BlackoutSet) Contains(d Date) bool {
	if b == nil {
		return false
	}
	if b.single[d] {
		return true
	}
	for _, r := range b.rules {
		for _, rd := range r.Dates {
			if rd == d {
				return true
			}
		}
	}
	return false
}

// Dates returns every excluded date, deduplicated and sorted.
func (b *BlackoutSet) Dates() []Date {
	seen := make(map[Date]bool)
	for d := range b.single {
		seen[d] = true
	}
	for _, r := range b.rules {
		for _, d := range r.Dates {
			seen[d] = true
		}
	}
	out := make([]Date, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
