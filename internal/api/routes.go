package api

import (
	"alcyxob/fitness-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	plannerService service.PlannerService,
) {

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	plannerHandler := NewPlannerHandler(plannerService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Exercise Catalog ---
		catalogGroup := protected.Group("/catalog")
		{
			// GET /api/v1/catalog?goalCategory=chest&difficulty=Novice
			catalogGroup.GET("", catalogHandler.Query)
			// GET /api/v1/catalog/{id}
			catalogGroup.GET("/:id", catalogHandler.GetDetail)
		}

		// --- Plan Builder ---
		plannerGroup := protected.Group("/planner")
		{
			// Goal selection and the lazily upserted goal record.
			plannerGroup.GET("/goal", plannerHandler.GetGoal)
			plannerGroup.PATCH("/goal", plannerHandler.ToggleGoal)
			plannerGroup.PUT("/goal", plannerHandler.ConfirmGoal)
			plannerGroup.GET("/goal/selections", plannerHandler.GetSelections)

			// Exercise selection for the active goal.
			plannerGroup.POST("/selections", plannerHandler.AddSelection)
			plannerGroup.DELETE("/selections/:catalogId", plannerHandler.RemoveSelection)

			// Weekly slot template.
			draftGroup := plannerGroup.Group("/draft")
			{
				draftGroup.GET("/slots", plannerHandler.GetSlots)
				draftGroup.POST("/slots", plannerHandler.AddSlot)
				draftGroup.PATCH("/slots/:slotId", plannerHandler.UpdateSlot)
				draftGroup.DELETE("/slots/:slotId", plannerHandler.RemoveSlot)

				// Blackout dates and rules.
				draftGroup.GET("/blackouts", plannerHandler.GetBlackouts)
				draftGroup.POST("/blackouts", plannerHandler.AddBlackout)
				draftGroup.DELETE("/blackouts", plannerHandler.RemoveBlackoutDate)
				draftGroup.DELETE("/blackouts/:ruleId", plannerHandler.RemoveBlackoutRule)

				// Calendar preview.
				draftGroup.POST("/preview", plannerHandler.GeneratePreview)
			}

			// Expand and persist.
			plannerGroup.POST("/plans", plannerHandler.SavePlan)
		}
	}
}
