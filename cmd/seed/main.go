// Command seed loads catalog exercises from a JSON file into MongoDB.
// The catalog is read-only at runtime; this is the authoring path.
//
//	seed -file catalog.json
package main

import (
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/mongo"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"
)

func main() {
	file := flag.String("file", "catalog.json", "path to the catalog JSON file (array of exercises)")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	items, err := loadCatalogFile(*file)
	if err != nil {
		log.Fatalf("FATAL: Could not read catalog file: %v", err)
	}
	log.Printf("Loaded %d catalog exercises from %s", len(items), *file)

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	mongo.EnsureCatalogIndexes(ctx, appDB.Collection("catalog_exercises"))

	n, err := seedCatalog(ctx, mongo.NewMongoCatalogRepository(appDB), items)
	if err != nil {
		log.Fatalf("FATAL: Seeding stopped after %d exercises: %v", n, err)
	}
	log.Printf("Seeded %d catalog exercises.", n)
}

// loadCatalogFile decodes a JSON array of catalog exercises.
func loadCatalogFile(path string) ([]domain.CatalogExercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []domain.CatalogExercise
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// seedCatalog inserts the exercises one by one, returning how many
// made it in before any failure.
func seedCatalog(ctx context.Context, repo repository.CatalogRepository, items []domain.CatalogExercise) (int, error) {
	for i := range items {
		if _, err := repo.Create(ctx, &items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
