package repository

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// CatalogRepository defines the interface for interacting with the
// exercise catalog.
type CatalogRepository interface {
	Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error)
	// Query lists exercises for a goal category, optionally filtered
	// by difficulty (empty string matches all).
	Query(ctx context.Context, goalCategory, difficulty string) ([]domain.CatalogExercise, error)
	// GetByIDs fetches the catalog snapshot used for identity resolution.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.CatalogExercise, error)
}

// GoalRepository defines the interface for interacting with persisted goals.
type GoalRepository interface {
	// GetOrCreate returns the user's goal with the given type name,
	// creating it when absent. Idempotent.
	GetOrCreate(ctx context.Context, userID primitive.ObjectID, typeName string) (*domain.Goal, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error)
}

// SelectionRepository defines the interface for the goal-scoped
// exercise selection set.
type SelectionRepository interface {
	// Add associates an exercise with a goal; adding an existing pair
	// is a no-op.
	Add(ctx context.Context, goalID, exerciseID primitive.ObjectID) error
	// Remove drops the association; removing an absent pair is a no-op.
	Remove(ctx context.Context, goalID, exerciseID primitive.ObjectID) error
	// GetByGoalID lists the associated exercise ids in position order.
	GetByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// PlanRepository defines the interface for saved training plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error)
}
