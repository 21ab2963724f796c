package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("catalog exercise not found")
)

// --- Service Interface ---
type CatalogService interface {
	// Query lists catalog exercises for a goal category, optionally
	// filtered by difficulty.
	Query(ctx context.Context, goalCategory, difficulty string) ([]domain.CatalogExercise, error)
	// GetDetail fetches one exercise with presigned video URLs on its
	// sub-exercise records.
	GetDetail(ctx context.Context, exerciseID primitive.ObjectID) (*domain.CatalogExercise, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	fileStorage storage.FileStorage
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, fileStorage storage.FileStorage) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		fileStorage: fileStorage,
	}
}

func (s *catalogService) Query(ctx context.Context, goalCategory, difficulty string) ([]domain.CatalogExercise, error) {
	if goalCategory == "" {
		return nil, errors.New("goal category is required")
	}
	return s.catalogRepo.Query(ctx, goalCategory, difficulty)
}

func (s *catalogService) GetDetail(ctx context.Context, exerciseID primitive.ObjectID) (*domain.CatalogExercise, error) {
	exercise, err := s.catalogRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	// Swap stored object keys for presigned GET URLs. A failed presign
	// leaves the raw key out of the response rather than failing the
	// whole detail fetch.
	for i, sub := range exercise.SubExercises {
		if sub.VideoKey == "" {
			continue
		}
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, sub.VideoKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Printf("WARN: presign failed for video key '%s': %v", sub.VideoKey, err)
			exercise.SubExercises[i].VideoKey = ""
			continue
		}
		exercise.SubExercises[i].VideoKey = url
	}
	return exercise, nil
}
