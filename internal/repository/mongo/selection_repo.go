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

const selectionCollectionName = "selections"

// mongoSelectionRepository implements repository.SelectionRepository
type mongoSelectionRepository struct {
	collection *mongo.Collection
}

// NewMongoSelectionRepository creates a new Selection repository backed by MongoDB.
func NewMongoSelectionRepository(db *mongo.Database) repository.SelectionRepository {
	return &mongoSelectionRepository{
		collection: db.Collection(selectionCollectionName),
	}
}

// Add associates an exercise with a goal. Adding an existing pair is
// a no-op success, so rapid repeated calls from the client are safe.
func (r *mongoSelectionRepository) Add(ctx context.Context, goalID, exerciseID primitive.ObjectID) error {
	if goalID == primitive.NilObjectID || exerciseID == primitive.NilObjectID {
		return errors.New("goal ID and exercise ID are required")
	}

	// Position is assigned from the current set size; the unique
	// (goalId, exerciseId) index swallows duplicate inserts.
	count, err := r.collection.CountDocuments(ctx, bson.M{"goalId": goalID})
	if err != nil {
		return err
	}

	selection := domain.Selection{
		ID:         primitive.NewObjectID(),
		GoalID:     goalID,
		ExerciseID: exerciseID,
		Position:   int(count),
		CreatedAt:  time.Now().UTC(),
	}
	_, err = r.collection.InsertOne(ctx, selection)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil // already selected
		}
		return err
	}
	return nil
}

// Remove drops the association. Removing an absent pair is a no-op.
func (r *mongoSelectionRepository) Remove(ctx context.Context, goalID, exerciseID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"goalId": goalID, "exerciseId": exerciseID})
	return err
}

// GetByGoalID lists the associated exercise ids in position order.
func (r *mongoSelectionRepository) GetByGoalID(ctx context.Context, goalID primitive.ObjectID) ([]primitive.ObjectID, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"goalId": goalID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var selections []domain.Selection
	if err = cursor.All(ctx, &selections); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(selections))
	for i, s := range selections {
		ids[i] = s.ExerciseID
	}
	return ids, nil
}

// EnsureSelectionIndexes creates necessary indexes for the selections collection.
func EnsureSelectionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "goalId", Value: 1}, {Key: "exerciseId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
