package planner

import "errors"

// --- Error Definitions ---
var (
	ErrSelectionConflict      = errors.New("goal selection conflict: weight loss and muscle group goals are mutually exclusive")
	ErrSelectionLimitExceeded = errors.New("goal selection limit exceeded: at most 2 muscle group tags")
	ErrSlotConflict           = errors.New("slot conflict: weekday and segment already occupied")
	ErrMinimumSlotsRequired   = errors.New("at least one weekly slot is required")
	ErrTimeRangeInvalid       = errors.New("time range invalid for segment")
	ErrSlotNotFound           = errors.New("slot not found")
	ErrBlackoutRuleNotFound   = errors.New("blackout rule not found")
)
