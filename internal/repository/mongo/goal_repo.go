package mongo

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const goalCollectionName = "goals"

// mongoGoalRepository implements repository.GoalRepository
type mongoGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoGoalRepository creates a new Goal repository backed by MongoDB.
func NewMongoGoalRepository(db *mongo.Database) repository.GoalRepository {
	return &mongoGoalRepository{
		collection: db.Collection(goalCollectionName),
	}
}

// GetOrCreate returns the user's goal with the given type name,
// creating it when absent. The upsert makes the operation safe to
// call repeatedly, including concurrently for the same pair thanks to
// the unique (userId, typeName) index.
func (r *mongoGoalRepository) GetOrCreate(ctx context.Context, userID primitive.ObjectID, typeName string) (*domain.Goal, error) {
	if userID == primitive.NilObjectID || typeName == "" {
		return nil, errors.New("user ID and goal type name are required")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": userID, "typeName": typeName}
	update := bson.M{
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"userId": userID, "typeName": typeName, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var goal domain.Goal
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByID retrieves a goal by its ID.
func (r *mongoGoalRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// EnsureGoalIndexes creates necessary indexes for the goals collection.
func EnsureGoalIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "typeName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
