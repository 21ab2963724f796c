// internal/domain/catalog.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubExercise is one movement in a catalog exercise's detail
// breakdown. VideoKey names an object in media storage; the API layer
// swaps it for a presigned URL.
type SubExercise struct {
	Name     string `bson:"name" json:"name"`
	VideoKey string `bson:"videoKey,omitempty" json:"videoRef,omitempty"`
	Sets     int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps     int    `bson:"reps,omitempty" json:"reps,omitempty"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CatalogExercise is a reusable exercise definition in the catalog.
type CatalogExercise struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	GoalCategory  string             `bson:"goalCategory" json:"goalCategory"` // e.g. "weight_loss", "chest"
	Difficulty    string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"` // e.g. "Novice", "Medium", "Advanced"
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Equipment     string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	SetRepScheme  string             `bson:"setRepScheme,omitempty" json:"setRepScheme,omitempty"` // e.g. "4x12"

	WeeklyCount       int     `bson:"weeklyCount,omitempty" json:"estimatedWeeklyCount,omitempty"`
	EstimatedCalories int     `bson:"estimatedCalories,omitempty" json:"estimatedCalories,omitempty"`
	AverageRating     float64 `bson:"averageRating,omitempty" json:"averageRating,omitempty"`
	AverageMinutes    int     `bson:"averageMinutes,omitempty" json:"averageMinutes,omitempty"`
	TotalSessions     int     `bson:"totalSessions,omitempty" json:"totalSessions,omitempty"`
	WeeksDuration     int     `bson:"weeksDuration,omitempty" json:"weeksDuration,omitempty"`
	UsageCount        int     `bson:"usageCount,omitempty" json:"usageCount,omitempty"`

	SubExercises []SubExercise `bson:"subExercises,omitempty" json:"subExercises,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
