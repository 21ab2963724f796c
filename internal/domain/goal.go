// internal/domain/goal.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is a user's persisted training goal, created lazily the first
// time a selection with that type name is confirmed. A user has at
// most one goal per type name; selecting a different goal identity
// supersedes rather than deletes.
type Goal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	TypeName  string             `bson:"typeName" json:"typeName"` // e.g. "weight_loss", "chest+back"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Selection associates one catalog exercise with a goal. Position is
// the insertion order, used as the default display order.
type Selection struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoalID     primitive.ObjectID `bson:"goalId" json:"goalId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Position   int                `bson:"position" json:"position"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
