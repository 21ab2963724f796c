package api

import (
	"alcyxob/fitness-planner/internal/planner"
	"alcyxob/fitness-planner/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannerHandler holds the planner service dependency.
type PlannerHandler struct {
	plannerService service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// --- Request/Response Structs ---

type GoalToggleRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type GoalStateResponse struct {
	Tags     []string `json:"tags"`
	TypeName string   `json:"typeName,omitempty"`
}

type GoalConfirmResponse struct {
	GoalID     string   `json:"goalId"`
	TypeName   string   `json:"typeName"`
	Selections []string `json:"selections"`
}

type SelectionRequest struct {
	CatalogID string `json:"catalogId" binding:"required"`
}

type SlotResponse struct {
	ID      string `json:"id"`
	Weekday int    `json:"weekday"` // ISO, Monday=1
	Segment string `json:"segment"`
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`
}

type AddSlotRequest struct {
	Weekday int    `json:"weekday" binding:"required,min=1,max=7"`
	Segment string `json:"segment" binding:"required"`
}

// UpdateSlotRequest carries the fields of a PATCH; any subset may be
// present and they apply in declaration order.
type UpdateSlotRequest struct {
	Weekday *int    `json:"weekday,omitempty"`
	Segment *string `json:"segment,omitempty"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
}

// BlackoutRequest adds either one date or a named rule of dates.
type BlackoutRequest struct {
	Date  string   `json:"date,omitempty"` // "2006-01-02"
	Name  string   `json:"name,omitempty"`
	Dates []string `json:"dates,omitempty"`
}

type BlackoutRuleResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Dates []string `json:"dates"`
}

type BlackoutStateResponse struct {
	Dates []string               `json:"dates"`
	Rules []BlackoutRuleResponse `json:"rules"`
}

type PreviewRequest struct {
	StartDate string `json:"startDate" binding:"required"` // "2006-01-02"
	Weeks     int    `json:"weeks,omitempty"`
}

type SavePlanRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

type SavePlanResponse struct {
	PlanID   string   `json:"planId"`
	Sessions int      `json:"sessions"`
	Warnings []string `json:"warnings,omitempty"`
}

// --- Goal selection ---

// ToggleGoal flips one goal tag in the draft selection.
// PATCH /api/v1/planner/goal
func (h *PlannerHandler) ToggleGoal(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req GoalToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	tags, err := h.plannerService.ToggleGoalTag(c.Request.Context(), userID, planner.GoalTag(req.Tag))
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrSelectionConflict):
			abortWithError(c, http.StatusConflict, "Muscle groups cannot be combined with the weight loss goal")
		case errors.Is(err, planner.ErrSelectionLimitExceeded):
			abortWithError(c, http.StatusConflict, "At most two muscle groups can be selected")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update the goal selection")
		}
		return
	}
	c.JSON(http.StatusOK, mapGoalState(tags))
}

// GetGoal returns the current goal tag selection.
// GET /api/v1/planner/goal
func (h *PlannerHandler) GetGoal(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, mapGoalState(h.plannerService.GoalTags(c.Request.Context(), userID)))
}

// ConfirmGoal upserts the persisted goal for the current selection and
// returns it with the synchronized exercise selection.
// PUT /api/v1/planner/goal
func (h *PlannerHandler) ConfirmGoal(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	goal, err := h.plannerService.ConfirmGoal(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveGoal) {
			abortWithError(c, http.StatusPreconditionFailed, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to confirm the goal")
		}
		return
	}
	c.JSON(http.StatusOK, GoalConfirmResponse{
		GoalID:     goal.ID.Hex(),
		TypeName:   goal.TypeName,
		Selections: h.selectionsOf(c, userID),
	})
}

// GetSelections returns the exercise selection for the active goal.
// GET /api/v1/planner/goal/selections
func (h *PlannerHandler) GetSelections(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"selections": h.selectionsOf(c, userID)})
}

func (h *PlannerHandler) selectionsOf(c *gin.Context, userID primitive.ObjectID) []string {
	ids := h.plannerService.SelectedExercises(c.Request.Context(), userID)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// --- Exercise selection ---

// AddSelection associates a catalog exercise with the active goal.
// POST /api/v1/planner/selections
func (h *PlannerHandler) AddSelection(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(req.CatalogID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid catalog ID format")
		return
	}

	if err := h.plannerService.AddExercise(c.Request.Context(), userID, exerciseID); err != nil {
		h.mapSelectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selections": h.selectionsOf(c, userID)})
}

// RemoveSelection drops a catalog exercise from the active goal.
// DELETE /api/v1/planner/selections/:catalogId
func (h *PlannerHandler) RemoveSelection(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("catalogId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid catalog ID format")
		return
	}

	if err := h.plannerService.RemoveExercise(c.Request.Context(), userID, exerciseID); err != nil {
		h.mapSelectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selections": h.selectionsOf(c, userID)})
}

func (h *PlannerHandler) mapSelectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveGoal):
		abortWithError(c, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, service.ErrSelectionBusy):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidExercise):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to update the exercise selection")
	}
}

// --- Weekly slot template ---

// GetSlots lists the draft's weekly slots.
// GET /api/v1/planner/draft/slots
func (h *PlannerHandler) GetSlots(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	slots := h.plannerService.Slots(c.Request.Context(), userID)
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = mapSlot(s)
	}
	c.JSON(http.StatusOK, out)
}

// AddSlot creates a slot, reassigning it to a free position when the
// requested one is taken.
// POST /api/v1/planner/draft/slots
func (h *PlannerHandler) AddSlot(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	segment := planner.Segment(req.Segment)
	if !planner.IsValidSegment(segment) {
		abortWithError(c, http.StatusBadRequest, "segment must be morning, afternoon or evening")
		return
	}

	slot, err := h.plannerService.AddSlot(c.Request.Context(), userID, req.Weekday, segment)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to add the slot")
		return
	}
	c.JSON(http.StatusCreated, mapSlot(slot))
}

// UpdateSlot applies the present fields of a PATCH body to a slot, in
// order: weekday, segment, start, end.
// PATCH /api/v1/planner/draft/slots/:slotId
func (h *PlannerHandler) UpdateSlot(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	slotID := c.Param("slotId")
	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Weekday == nil && req.Segment == nil && req.Start == nil && req.End == nil {
		abortWithError(c, http.StatusBadRequest, "At least one of weekday, segment, start, end is required")
		return
	}

	ctx := c.Request.Context()
	var slot planner.WeeklySlot
	var err error

	if req.Weekday != nil {
		if *req.Weekday < 1 || *req.Weekday > 7 {
			abortWithError(c, http.StatusBadRequest, "weekday must be 1 (Monday) through 7 (Sunday)")
			return
		}
		if slot, err = h.plannerService.ChangeSlotWeekday(ctx, userID, slotID, *req.Weekday); err != nil {
			h.mapSlotError(c, err)
			return
		}
	}
	if req.Segment != nil {
		segment := planner.Segment(*req.Segment)
		if !planner.IsValidSegment(segment) {
			abortWithError(c, http.StatusBadRequest, "segment must be morning, afternoon or evening")
			return
		}
		if slot, err = h.plannerService.ChangeSlotSegment(ctx, userID, slotID, segment); err != nil {
			h.mapSlotError(c, err)
			return
		}
	}
	if req.Start != nil {
		start, perr := planner.ParseTimeOfDay(*req.Start)
		if perr != nil {
			abortWithError(c, http.StatusBadRequest, "start must be in HH:MM format")
			return
		}
		if slot, err = h.plannerService.ChangeSlotStart(ctx, userID, slotID, start); err != nil {
			h.mapSlotError(c, err)
			return
		}
	}
	if req.End != nil {
		end, perr := planner.ParseTimeOfDay(*req.End)
		if perr != nil {
			abortWithError(c, http.StatusBadRequest, "end must be in HH:MM format")
			return
		}
		if slot, err = h.plannerService.ChangeSlotEnd(ctx, userID, slotID, end); err != nil {
			h.mapSlotError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, mapSlot(slot))
}

// RemoveSlot deletes a slot; the last slot cannot be removed.
// DELETE /api/v1/planner/draft/slots/:slotId
func (h *PlannerHandler) RemoveSlot(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	if err := h.plannerService.RemoveSlot(c.Request.Context(), userID, c.Param("slotId")); err != nil {
		h.mapSlotError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlannerHandler) mapSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrSlotNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrSlotConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, planner.ErrMinimumSlotsRequired):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, planner.ErrTimeRangeInvalid):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to update the slot")
	}
}

// --- Blackout dates ---

// GetBlackouts lists excluded dates and the active rules.
// GET /api/v1/planner/draft/blackouts
func (h *PlannerHandler) GetBlackouts(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	resp := BlackoutStateResponse{Dates: []string{}, Rules: []BlackoutRuleResponse{}}
	for _, d := range h.plannerService.Blackouts(ctx, userID) {
		resp.Dates = append(resp.Dates, d.String())
	}
	for _, r := range h.plannerService.BlackoutRules(ctx, userID) {
		resp.Rules = append(resp.Rules, mapBlackoutRule(r))
	}
	c.JSON(http.StatusOK, resp)
}

// AddBlackout excludes either one date or a named group of dates.
// POST /api/v1/planner/draft/blackouts
func (h *PlannerHandler) AddBlackout(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// Named rule form.
	if len(req.Dates) > 0 {
		dates := make([]planner.Date, 0, len(req.Dates))
		for _, s := range req.Dates {
			d, err := planner.ParseDate(s)
			if err != nil {
				abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", s))
				return
			}
			dates = append(dates, d)
		}
		rule, err := h.plannerService.AddBlackoutRule(c.Request.Context(), userID, req.Name, dates)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, mapBlackoutRule(rule))
		return
	}

	// Single date form.
	if req.Date == "" {
		abortWithError(c, http.StatusBadRequest, "Either date or name+dates is required")
		return
	}
	d, err := planner.ParseDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	h.plannerService.AddBlackout(c.Request.Context(), userID, d)
	c.Status(http.StatusNoContent)
}

// RemoveBlackoutDate drops one individually added date.
// DELETE /api/v1/planner/draft/blackouts?date=2024-07-01
func (h *PlannerHandler) RemoveBlackoutDate(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	d, err := planner.ParseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date query parameter must be YYYY-MM-DD")
		return
	}
	h.plannerService.RemoveBlackout(c.Request.Context(), userID, d)
	c.Status(http.StatusNoContent)
}

// RemoveBlackoutRule drops a rule and every date it contributed.
// DELETE /api/v1/planner/draft/blackouts/:ruleId
func (h *PlannerHandler) RemoveBlackoutRule(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	if err := h.plannerService.RemoveBlackoutRule(c.Request.Context(), userID, c.Param("ruleId")); err != nil {
		if errors.Is(err, planner.ErrBlackoutRuleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove the blackout rule")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Preview and save ---

// GeneratePreview builds the multi-week calendar preview for the draft.
// POST /api/v1/planner/draft/preview
func (h *PlannerHandler) GeneratePreview(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	start, err := planner.ParseDate(req.StartDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}

	preview, err := h.plannerService.GeneratePreview(c.Request.Context(), userID, start, req.Weeks)
	if err != nil {
		h.mapPreconditionError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPreview(preview))
}

// SavePlan expands the current preview into dated sessions and
// persists the plan.
// POST /api/v1/planner/plans
func (h *PlannerHandler) SavePlan(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req SavePlanRequest
	// An empty body is fine; difficulty is optional.
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.plannerService.SavePlan(c.Request.Context(), userID, req.Difficulty)
	if err != nil {
		h.mapPreconditionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SavePlanResponse{
		PlanID:   result.PlanID.Hex(),
		Sessions: result.Sessions,
		Warnings: result.Warnings,
	})
}

func (h *PlannerHandler) mapPreconditionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveGoal),
		errors.Is(err, service.ErrNoSelections),
		errors.Is(err, service.ErrNoPreview):
		abortWithError(c, http.StatusPreconditionFailed, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to build the plan")
	}
}

// --- DTO mapping ---

func mapGoalState(tags []planner.GoalTag) GoalStateResponse {
	resp := GoalStateResponse{Tags: []string{}}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, string(t))
	}
	var sel planner.GoalSelection
	for _, t := range tags {
		_ = sel.Toggle(t)
	}
	resp.TypeName = sel.TypeName()
	return resp
}

func mapSlot(s planner.WeeklySlot) SlotResponse {
	return SlotResponse{
		ID:      s.ID,
		Weekday: s.Weekday,
		Segment: string(s.Segment),
		Start:   s.Start.String(),
		End:     s.End.String(),
	}
}

func mapBlackoutRule(r planner.BlackoutRule) BlackoutRuleResponse {
	resp := BlackoutRuleResponse{ID: r.ID, Name: r.Name, Dates: []string{}}
	for _, d := range r.Dates {
		resp.Dates = append(resp.Dates, d.String())
	}
	return resp
}

// PreviewResponse mirrors the planner preview with wire-friendly
// date and time representations.
type PreviewResponse struct {
	Weeks []PreviewWeekResponse `json:"weeks"`
}

type PreviewWeekResponse struct {
	StartDate string               `json:"startDate"`
	Days      []PreviewDayResponse `json:"days"`
}

type PreviewDayResponse struct {
	Date     string                   `json:"date"`
	Sessions []PreviewSessionResponse `json:"sessions"`
}

type PreviewSessionResponse struct {
	Segment   string                    `json:"segment"`
	Start     string                    `json:"start"`
	End       string                    `json:"end"`
	Exercises []PreviewExerciseResponse `json:"exercises"`
}

type PreviewExerciseResponse struct {
	CatalogID       string `json:"catalogId,omitempty"`
	Name            string `json:"name"`
	Sets            int    `json:"sets,omitempty"`
	Reps            int    `json:"reps,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func mapPreview(p *planner.Preview) PreviewResponse {
	resp := PreviewResponse{Weeks: []PreviewWeekResponse{}}
	for _, week := range p.Weeks {
		w := PreviewWeekResponse{StartDate: week.StartDate.String(), Days: []PreviewDayResponse{}}
		for _, day := range week.Days {
			d := PreviewDayResponse{Date: day.Date.String(), Sessions: []PreviewSessionResponse{}}
			for _, session := range day.Sessions {
				s := PreviewSessionResponse{
					Segment: string(session.Segment),
					Start:   session.Start.String(),
					End:     session.End.String(),
				}
				for _, ex := range session.Exercises {
					s.Exercises = append(s.Exercises, PreviewExerciseResponse{
						CatalogID:       ex.CatalogID,
						Name:            ex.Name,
						Sets:            ex.Sets,
						Reps:            ex.Reps,
						DurationMinutes: ex.DurationMinutes,
						Notes:           ex.Notes,
					})
				}
				d.Sessions = append(d.Sessions, s)
			}
			w.Days = append(w.Days, d)
		}
		resp.Weeks = append(resp.Weeks, w)
	}
	return resp
}
