// internal/domain/plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanSession is one persisted, dated occurrence of an exercise
// inside a saved plan. Date is stored as UTC midnight; WeekIndex and
// WeekdayNumber are derived from it relative to the plan's start and
// kept for consumers that index by week/day rather than date.
type PlanSession struct {
	ExerciseID      primitive.ObjectID `bson:"exerciseId" json:"catalogId"`
	ExerciseName    string             `bson:"exerciseName" json:"exerciseName"`
	Sets            int                `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps            int                `bson:"reps,omitempty" json:"reps,omitempty"`
	DurationMinutes int                `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
	WeekIndex       int                `bson:"weekIndex" json:"weekIndex"`
	WeekdayNumber   int                `bson:"weekdayNumber" json:"weekdayNumber"` // ISO, Monday=1
	Segment         string             `bson:"segment" json:"segment"`
	Start           string             `bson:"start" json:"start"` // "HH:MM"
	End             string             `bson:"end" json:"end"`
	VideoKey        string             `bson:"videoKey,omitempty" json:"videoRef,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	DisplayOrder    int                `bson:"displayOrder" json:"displayOrder"`
}

// TrainingPlan is a saved, fully expanded workout plan.
type TrainingPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	GoalID        primitive.ObjectID `bson:"goalId" json:"goalId"`
	Difficulty    string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	StartDate     time.Time          `bson:"startDate" json:"planStartDate"` // canonical Monday, UTC midnight
	BlackoutDates []time.Time        `bson:"blackoutDates,omitempty" json:"blackoutDates,omitempty"`
	Sessions      []PlanSession      `bson:"sessions" json:"sessions"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
