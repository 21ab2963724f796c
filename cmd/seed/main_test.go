package main

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingCatalogRepo struct {
	created []domain.CatalogExercise
	failAt  int // 1-based index to fail on, 0 = never
}

func (r *recordingCatalogRepo) Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if r.failAt > 0 && len(r.created)+1 == r.failAt {
		return primitive.NilObjectID, errors.New("insert failed")
	}
	r.created = append(r.created, *exercise)
	return primitive.NewObjectID(), nil
}

func (r *recordingCatalogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingCatalogRepo) Query(ctx context.Context, goalCategory, difficulty string) ([]domain.CatalogExercise, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingCatalogRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.CatalogExercise, error) {
	return nil, errors.New("not implemented")
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Bench Press", "goalCategory": "chest", "difficulty": "Novice",
		 "subExercises": [{"name": "Incline Press", "sets": 3, "reps": 12}]},
		{"name": "Interval Run", "goalCategory": "weight_loss"}
	]`), 0o644))

	items, err := loadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bench Press", items[0].Name)
	assert.Equal(t, "chest", items[0].GoalCategory)
	require.Len(t, items[0].SubExercises, 1)
	assert.Equal(t, "Incline Press", items[0].SubExercises[0].Name)
	assert.Equal(t, "weight_loss", items[1].GoalCategory)
}

func TestLoadCatalogFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))
	_, err := loadCatalogFile(path)
	assert.Error(t, err)
}

func TestSeedCatalog(t *testing.T) {
	repo := &recordingCatalogRepo{}
	items := []domain.CatalogExercise{
		{Name: "Bench Press", GoalCategory: "chest"},
		{Name: "Back Squat", GoalCategory: "back"},
	}
	n, err := seedCatalog(context.Background(), repo, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, repo.created, 2)
}

func TestSeedCatalog_StopsOnFailure(t *testing.T) {
	repo := &recordingCatalogRepo{failAt: 2}
	items := []domain.CatalogExercise{
		{Name: "Bench Press", GoalCategory: "chest"},
		{Name: "Back Squat", GoalCategory: "back"},
		{Name: "Deadlift", GoalCategory: "back"},
	}
	n, err := seedCatalog(context.Background(), repo, items)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}
