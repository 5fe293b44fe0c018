package routes

import (
	"construction_estimator/internal/adapter/http/handlers"
	"construction_estimator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathAdmin     = "/admin"
)

func addEstimatorRoutes(
	rg *gin.RouterGroup,
	tokens middleware.TokenVerifier,
	estimateHandler *handlers.EstimateHandler,
	referenceHandler *handlers.ReferenceHandler,
	adminHandler *handlers.AdminHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		// Reference rates are public.
		estimates.GET("/cities", referenceHandler.ListCities)
		estimates.GET("/materials", referenceHandler.ListMaterials)

		user := estimates.Group("", middleware.RequireAuth(tokens))
		user.POST("/calculate", estimateHandler.Calculate)
		user.GET("/history", estimateHandler.History)
		user.GET("/history/:id", estimateHandler.GetHistoryItem)
		user.DELETE("/history/:id", estimateHandler.DeleteHistoryItem)
		user.GET("/history/:id/report", estimateHandler.DownloadReport)
	}

	admin := rg.Group(PathAdmin, middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/cities", referenceHandler.ListCities)
		admin.POST("/cities", referenceHandler.CreateCity)
		admin.PUT("/cities/:id", referenceHandler.UpdateCity)
		admin.DELETE("/cities/:id", referenceHandler.DeleteCity)

		admin.GET("/materials", referenceHandler.ListMaterials)
		admin.POST("/materials", referenceHandler.CreateMaterial)
		admin.PUT("/materials/:id", referenceHandler.UpdateMaterial)
		admin.DELETE("/materials/:id", referenceHandler.DeleteMaterial)

		admin.GET("/estimates", adminHandler.ListEstimates)
		admin.GET("/estimates/:id", adminHandler.GetEstimate)
		admin.DELETE("/estimates/:id", adminHandler.DeleteEstimate)
	}
}
