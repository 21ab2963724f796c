package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/planner"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNoActiveGoal    = errors.New("no active goal: confirm a goal selection first")
	ErrNoSelections    = errors.New("no exercises selected for the active goal")
	ErrNoPreview       = errors.New("no calendar preview generated yet")
	ErrSelectionBusy   = errors.New("a change for this exercise is already in flight")
	ErrInvalidExercise = errors.New("exercise does not exist in the catalog")
)

// SavedPlanResult is the outcome of a save: the persisted plan id
// plus non-fatal warnings for exercises dropped during expansion.
type SavedPlanResult struct {
	PlanID   primitive.ObjectID
	Sessions int
	Warnings []string
}

// --- Service Interface ---
type PlannerService interface {
	// Goal selection.
	ToggleGoalTag(ctx context.Context, userID primitive.ObjectID, tag planner.GoalTag) ([]planner.GoalTag, error)
	GoalTags(ctx context.Context, userID primitive.ObjectID) []planner.GoalTag
	// ConfirmGoal lazily upserts the persisted goal for the current
	// selection and resynchronizes the local selection set from it.
	ConfirmGoal(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error)

	// Exercise selection (requires a confirmed goal).
	AddExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	RemoveExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	SelectedExercises(ctx context.Context, userID primitive.ObjectID) []string

	// Weekly slot template.
	Slots(ctx context.Context, userID primitive.ObjectID) []planner.WeeklySlot
	AddSlot(ctx context.Context, userID primitive.ObjectID, weekday int, segment planner.Segment) (planner.WeeklySlot, error)
	ChangeSlotWeekday(ctx context.Context, userID primitive.ObjectID, slotID string, weekday int) (planner.WeeklySlot, error)
	ChangeSlotSegment(ctx context.Context, userID primitive.ObjectID, slotID string, segment planner.Segment) (planner.WeeklySlot, error)
	ChangeSlotStart(ctx context.Context, userID primitive.ObjectID, slotID string, start planner.TimeOfDay) (planner.WeeklySlot, error)
	ChangeSlotEnd(ctx context.Context, userID primitive.ObjectID, slotID string, end planner.TimeOfDay) (planner.WeeklySlot, error)
	RemoveSlot(ctx context.Context, userID primitive.ObjectID, slotID string) error

	// Blackout dates.
	Blackouts(ctx context.Context, userID primitive.ObjectID) []planner.Date
	BlackoutRules(ctx context.Context, userID primitive.ObjectID) []planner.BlackoutRule
	AddBlackout(ctx context.Context, userID primitive.ObjectID, date planner.Date)
	RemoveBlackout(ctx context.Context, userID primitive.ObjectID, date planner.Date)
	AddBlackoutRule(ctx context.Context, userID primitive.ObjectID, name string, dates []planner.Date) (planner.BlackoutRule, error)
	RemoveBlackoutRule(ctx context.Context, userID primitive.ObjectID, ruleID string) error

	// Preview and save.
	GeneratePreview(ctx context.Context, userID primitive.ObjectID, start planner.Date, weeks int) (*planner.Preview, error)
	SavePlan(ctx context.Context, userID primitive.ObjectID, difficulty string) (*SavedPlanResult, error)
}

// draftEntry is one user's working state plus its lock. All draft
// access funnels through withDraft so a user's concurrent requests
// serialize; different users never contend.
type draftEntry struct {
	mu       sync.Mutex
	draft    *planner.Draft
	goalID   primitive.ObjectID
	inFlight map[string]bool // exercise id hex -> request in flight
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	cfg           planner.Config
	defaultWeeks  int
	goalRepo      repository.GoalRepository
	selectionRepo repository.SelectionRepository
	catalogRepo   repository.CatalogRepository
	planRepo      repository.PlanRepository

	mu     sync.Mutex
	drafts map[primitive.ObjectID]*draftEntry
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(
	cfg planner.Config,
	defaultWeeks int,
	goalRepo repository.GoalRepository,
	selectionRepo repository.SelectionRepository,
	catalogRepo repository.CatalogRepository,
	planRepo repository.PlanRepository,
) PlannerService {
	if defaultWeeks < 1 {
		defaultWeeks = 4
	}
	return &plannerService{
		cfg:           cfg,
		defaultWeeks:  defaultWeeks,
		goalRepo:      goalRepo,
		selectionRepo: selectionRepo,
		catalogRepo:   catalogRepo,
		planRepo:      planRepo,
		drafts:        make(map[primitive.ObjectID]*draftEntry),
	}
}

func (s *plannerService) entry(userID primitive.ObjectID) *draftEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[userID]
	if !ok {
		e = &draftEntry{
			draft:    planner.NewDraft(s.cfg),
			inFlight: make(map[string]bool),
		}
		s.drafts[userID] = e
	}
	return e
}

func (s *plannerService) withDraft(userID primitive.ObjectID, fn func(e *draftEntry) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

// --- Goal selection ---

func (s *plannerService) ToggleGoalTag(ctx context.Context, userID primitive.ObjectID, tag planner.GoalTag) ([]planner.GoalTag, error) {
	var tags []planner.GoalTag
	err := s.withDraft(userID, func(e *draftEntry) error {
		if err := e.draft.Goal.Toggle(tag); err != nil {
			return err
		}
		// The persisted goal no longer matches the selection; it is
		// re-upserted on the next confirm. The preview is stale too.
		e.goalID = primitive.NilObjectID
		e.draft.Preview = nil
		tags = e.draft.Goal.Tags()
		return nil
	})
	return tags, err
}

func (s *plannerService) GoalTags(ctx context.Context, userID primitive.ObjectID) []planner.GoalTag {
	var tags []planner.GoalTag
	_ = s.withDraft(userID, func(e *draftEntry) error {
		tags = e.draft.Goal.Tags()
		return nil
	})
	return tags
}

func (s *plannerService) ConfirmGoal(ctx context.Context, userID primitive.ObjectID) (*domain.Goal, error) {
	var goal *domain.Goal
	err := s.withDraft(userID, func(e *draftEntry) error {
		typeName := e.draft.Goal.TypeName()
		if typeName == "" {
			return ErrNoActiveGoal
		}
		g, err := s.goalRepo.GetOrCreate(ctx, userID, typeName)
		if err != nil {
			return err
		}
		e.goalID = g.ID

		// Resynchronize the local selection from what the goal already
		// has associated; the ids arrive in position order.
		ids, err := s.selectionRepo.GetByGoalID(ctx, g.ID)
		if err != nil {
			return err
		}
		e.draft.Selection = nil
		for _, id := range ids {
			e.draft.AddSelection(id.Hex())
		}
		goal = g
		return nil
	})
	return goal, err
}

// --- Exercise selection ---

// beginExercise marks an exercise mutation in flight, rejecting a
// duplicate rapid trigger for the same exercise id.
func (e *draftEntry) beginExercise(id string) error {
	if e.goalID == primitive.NilObjectID {
		return ErrNoActiveGoal
	}
	if e.inFlight[id] {
		return ErrSelectionBusy
	}
	e.inFlight[id] = true
	return nil
}

func (s *plannerService) AddExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	e := s.entry(userID)
	e.mu.Lock()
	if err := e.beginExercise(exerciseID.Hex()); err != nil {
		e.mu.Unlock()
		return err
	}
	goalID := e.goalID
	e.mu.Unlock()

	// Validate against the catalog before persisting the association.
	_, err := s.catalogRepo.GetByID(ctx, exerciseID)
	if err == nil {
		err = s.selectionRepo.Add(ctx, goalID, exerciseID)
	} else if errors.Is(err, repository.ErrNotFound) {
		err = ErrInvalidExercise
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, exerciseID.Hex())
	if err != nil {
		return err
	}
	e.draft.AddSelection(exerciseID.Hex())
	e.draft.Preview = nil
	return nil
}

func (s *plannerService) RemoveExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	e := s.entry(userID)
	e.mu.Lock()
	if err := e.beginExercise(exerciseID.Hex()); err != nil {
		e.mu.Unlock()
		return err
	}
	goalID := e.goalID
	e.mu.Unlock()

	err := s.selectionRepo.Remove(ctx, goalID, exerciseID)

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, exerciseID.Hex())
	if err != nil {
		return err
	}
	e.draft.RemoveSelection(exerciseID.Hex())
	e.draft.Preview = nil
	return nil
}

func (s *plannerService) SelectedExercises(ctx context.Context, userID primitive.ObjectID) []string {
	var ids []string
	_ = s.withDraft(userID, func(e *draftEntry) error {
		ids = append(ids, e.draft.Selection...)
		return nil
	})
	return ids
}

// --- Weekly slot template ---

func (s *plannerService) Slots(ctx context.Context, userID primitive.ObjectID) []planner.WeeklySlot {
	var slots []planner.WeeklySlot
	_ = s.withDraft(userID, func(e *draftEntry) error {
		slots = e.draft.Template.Slots()
		return nil
	})
	return slots
}

func (s *plannerService) AddSlot(ctx context.Context, userID primitive.ObjectID, weekday int, segment planner.Segment) (planner.WeeklySlot, error) {
	var slot planner.WeeklySlot
	err := s.withDraft(userID, func(e *draftEntry) error {
		slot = e.draft.Template.AddSlot(weekday, segment)
		e.draft.Preview = nil
		return nil
	})
	return slot, err
}

func (s *plannerService) ChangeSlotWeekday(ctx context.Context, userID primitive.ObjectID, slotID string, weekday int) (planner.WeeklySlot, error) {
	var slot planner.WeeklySlot
	err := s.withDraft(userID, func(e *draftEntry) error {
		var err error
		slot, err = e.draft.Template.ChangeWeekday(slotID, weekday)
		if err == nil {
			e.draft.Preview = nil
		}
		return err
	})
	return slot, err
}

func (s *plannerService) ChangeSlotSegment(ctx context.Context, userID primitive.ObjectID, slotID string, segment planner.Segment) (planner.WeeklySlot, error) {
	var slot planner.WeeklySlot
	err := s.withDraft(userID, func(e *draftEntry) error {
		var err error
		slot, err = e.draft.Template.ChangeSegment(slotID, segment)
		if err == nil {
			e.draft.Preview = nil
		}
		return err
	})
	return slot, err
}

func (s *plannerService) ChangeSlotStart(ctx context.Context, userID primitive.ObjectID, slotID string, start planner.TimeOfDay) (planner.WeeklySlot, error) {
	var slot planner.WeeklySlot
	err := s.withDraft(userID, func(e *draftEntry) error {
		var err error
		slot, err = e.draft.Template.ChangeStart(slotID, start)
		if err == nil {
			e.draft.Preview = nil
		}
		return err
	})
	return slot, err
}

func (s *plannerService) ChangeSlotEnd(ctx context.Context, userID primitive.ObjectID, slotID string, end planner.TimeOfDay) (planner.WeeklySlot, error) {
	var slot planner.WeeklySlot
	err := s.withDraft(userID, func(e *draftEntry) error {
		var err error
		slot, err = e.draft.Template.ChangeEnd(slotID, end)
		if err == nil {
			e.draft.Preview = nil
		}
		return err
	})
	return slot, err
}

func (s *plannerService) RemoveSlot(ctx context.Context, userID primitive.ObjectID, slotID string) error {
	return s.withDraft(userID, func(e *draftEntry) error {
		if err := e.draft.Template.RemoveSlot(slotID); err != nil {
			return err
		}
		e.draft.Preview = nil
		return nil
	})
}

// --- Blackout dates ---

func (s *plannerService) Blackouts(ctx context.Context, userID primitive.ObjectID) []planner.Date {
	var dates []planner.Date
	_ = s.withDraft(userID, func(e *draftEntry) error {
		dates = e.draft.Blackouts.Dates()
		return nil
	})
	return dates
}

func (s *plannerService) BlackoutRules(ctx context.Context, userID primitive.ObjectID) []planner.BlackoutRule {
	var rules []planner.BlackoutRule
	_ = s.withDraft(userID, func(e *draftEntry) error {
		rules = e.draft.Blackouts.Rules()
		return nil
	})
	return rules
}

func (s *plannerService) AddBlackout(ctx context.Context, userID primitive.ObjectID, date planner.Date) {
	_ = s.withDraft(userID, func(e *draftEntry) error {
		e.draft.Blackouts.Add(date)
		e.draft.Preview = nil
		return nil
	})
}

func (s *plannerService) RemoveBlackout(ctx context.Context, userID primitive.ObjectID, date planner.Date) {
	_ = s.withDraft(userID, func(e *draftEntry) error {
		e.draft.Blackouts.Remove(date)
		e.draft.Preview = nil
		return nil
	})
}

func (s *plannerService) AddBlackoutRule(ctx context.Context, userID primitive.ObjectID, name string, dates []planner.Date) (planner.BlackoutRule, error) {
	var rule planner.BlackoutRule
	err := s.withDraft(userID, func(e *draftEntry) error {
		if name == "" || len(dates) == 0 {
			return errors.New("blackout rule needs a name and at least one date")
		}
		rule = e.draft.Blackouts.AddRule(name, dates...)
		e.draft.Preview = nil
		return nil
	})
	return rule, err
}

func (s *plannerService) RemoveBlackoutRule(ctx context.Context, userID primitive.ObjectID, ruleID string) error {
	return s.withDraft(userID, func(e *draftEntry) error {
		if err := e.draft.Blackouts.RemoveRule(ruleID); err != nil {
			return err
		}
		e.draft.Preview = nil
		return nil
	})
}

// --- Preview and save ---

// previewEntries loads the selected exercises' metadata and turns
// them into preview entries, preserving selection order.
func (s *plannerService) previewEntries(ctx context.Context, selection []string) ([]planner.PreviewExercise, error) {
	ids := make([]primitive.ObjectID, 0, len(selection))
	for _, hex := range selection {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	exercises, err := s.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.CatalogExercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID.Hex()] = ex
	}

	entries := make([]planner.PreviewExercise, 0, len(selection))
	for _, hex := range selection {
		ex, ok := byID[hex]
		if !ok {
			log.Printf("WARN: selected exercise %s no longer in catalog, skipping", hex)
			continue
		}
		entry := planner.PreviewExercise{
			CatalogID:       ex.ID.Hex(),
			Name:            ex.Name,
			DurationMinutes: ex.AverageMinutes,
		}
		if len(ex.SubExercises) > 0 {
			entry.Sets = ex.SubExercises[0].Sets
			entry.Reps = ex.SubExercises[0].Reps
			entry.VideoRef = ex.SubExercises[0].VideoKey
			entry.Notes = ex.SubExercises[0].Notes
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *plannerService) GeneratePreview(ctx context.Context, userID primitive.ObjectID, start planner.Date, weeks int) (*planner.Preview, error) {
	e := s.entry(userID)
	e.mu.Lock()
	if e.goalID == primitive.NilObjectID {
		e.mu.Unlock()
		return nil, ErrNoActiveGoal
	}
	if len(e.draft.Selection) == 0 {
		e.mu.Unlock()
		return nil, ErrNoSelections
	}
	selection := append([]string(nil), e.draft.Selection...)
	e.mu.Unlock()

	entries, err := s.previewEntries(ctx, selection)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoSelections
	}
	if weeks < 1 {
		weeks = s.defaultWeeks
	}

	var preview planner.Preview
	err = s.withDraft(userID, func(e *draftEntry) error {
		preview = planner.GeneratePreview(e.draft.Template, e.draft.Blackouts, entries, start, weeks)
		e.draft.Preview = &preview
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

func (s *plannerService) SavePlan(ctx context.Context, userID primitive.ObjectID, difficulty string) (*SavedPlanResult, error) {
	e := s.entry(userID)
	e.mu.Lock()
	if e.goalID == primitive.NilObjectID {
		e.mu.Unlock()
		return nil, ErrNoActiveGoal
	}
	if len(e.draft.Selection) == 0 {
		e.mu.Unlock()
		return nil, ErrNoSelections
	}
	if e.draft.Preview == nil {
		e.mu.Unlock()
		return nil, ErrNoPreview
	}
	goalID := e.goalID
	selection := append([]string(nil), e.draft.Selection...)
	preview := *e.draft.Preview
	// Snapshot the blackout set: expansion runs outside the lock and
	// must not observe concurrent blackout edits for the same user.
	blackouts := e.draft.Blackouts.Clone()
	e.mu.Unlock()

	// Build the catalog snapshot for identity resolution.
	ids := make([]primitive.ObjectID, 0, len(selection))
	for _, hex := range selection {
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			ids = append(ids, id)
		}
	}
	exercises, err := s.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	snapshot := make([]planner.CatalogSnapshotItem, len(exercises))
	for i, ex := range exercises {
		item := planner.CatalogSnapshotItem{ID: ex.ID.Hex(), Name: ex.Name}
		for _, sub := range ex.SubExercises {
			item.SubNames = append(item.SubNames, sub.Name)
		}
		snapshot[i] = item
	}

	expansion := planner.Expand(preview, blackouts, planner.NewCatalogIndex(snapshot))
	for _, w := range expansion.Warnings {
		log.Printf("WARN: plan expansion: %s", w)
	}
	if len(expansion.Sessions) == 0 {
		return nil, ErrNoPreview
	}

	plan := &domain.TrainingPlan{
		UserID:     userID,
		GoalID:     goalID,
		Difficulty: difficulty,
		StartDate:  expansion.CanonicalStart.Time(),
	}
	for _, d := range blackouts.Dates() {
		plan.BlackoutDates = append(plan.BlackoutDates, d.Time())
	}
	for _, session := range expansion.Sessions {
		for _, ex := range session.Exercises {
			exerciseID, err := primitive.ObjectIDFromHex(ex.CatalogID)
			if err != nil {
				continue
			}
			plan.Sessions = append(plan.Sessions, domain.PlanSession{
				ExerciseID:      exerciseID,
				ExerciseName:    ex.Name,
				Sets:            ex.Sets,
				Reps:            ex.Reps,
				DurationMinutes: ex.DurationMinutes,
				Date:            session.Date.Time(),
				WeekIndex:       session.WeekIndex,
				WeekdayNumber:   session.WeekdayNumber,
				Segment:         string(session.Segment),
				Start:           session.Start.String(),
				End:             session.End.String(),
				VideoKey:        ex.VideoRef,
				Notes:           ex.Notes,
				DisplayOrder:    ex.DisplayOrder,
			})
		}
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	return &SavedPlanResult{
		PlanID:   planID,
		Sessions: len(plan.Sessions),
		Warnings: expansion.Warnings,
	}, nil
}
