package api

import (
	"alcyxob/fitness-planner/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Query lists catalog exercises for a goal category, optionally
// filtered by difficulty.
// GET /api/v1/catalog?goalCategory=chest&difficulty=Novice
func (h *CatalogHandler) Query(c *gin.Context) {
	goalCategory := c.Query("goalCategory")
	if goalCategory == "" {
		abortWithError(c, http.StatusBadRequest, "goalCategory query parameter is required")
		return
	}
	difficulty := c.Query("difficulty")

	exercises, err := h.catalogService.Query(c.Request.Context(), goalCategory, difficulty)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to query the exercise catalog")
		return
	}
	// An empty result is a valid response, not an error.
	c.JSON(http.StatusOK, exercises)
}

// GetDetail returns one catalog exercise with its sub-exercise
// breakdown, video keys swapped for presigned URLs.
// GET /api/v1/catalog/:id
func (h *CatalogHandler) GetDetail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format")
		return
	}

	exercise, err := h.catalogService.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load the exercise")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}
