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

const catalogCollectionName = "catalog_exercises"

// mongoCatalogRepository implements repository.CatalogRepository
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewMongoCatalogRepository creates a new catalog repository backed by MongoDB.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		collection: db.Collection(catalogCollectionName),
	}
}

// Create inserts a new catalog exercise.
func (r *mongoCatalogRepository) Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.GoalCategory == "" {
		return primitive.NilObjectID, errors.New("exercise name and goal category are required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a catalog exercise by its ID.
func (r *mongoCatalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	var exercise domain.CatalogExercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// Query lists exercises for a goal category, optionally filtered by
// difficulty. Results are sorted by name so pagination upstream is
// stable.
func (r *mongoCatalogRepository) Query(ctx context.Context, goalCategory, difficulty string) ([]domain.CatalogExercise, error) {
	filter := bson.M{"goalCategory": goalCategory}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.CatalogExercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetByIDs fetches the given catalog exercises in one round trip.
// Unknown ids are simply absent from the result.
func (r *mongoCatalogRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.CatalogExercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.CatalogExercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsureCatalogIndexes creates necessary indexes for the catalog collection.
func EnsureCatalogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "goalCategory", Value: 1}, {Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "subExercises.name", Value: "text"}},
			Options: options.Index().SetName("catalog_text_search"),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
