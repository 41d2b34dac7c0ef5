package routes

import (
	"dekora_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates     = "/estimates"
	PathPricingConfig = "/pricing-config"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, configHandler *handlers.PricingConfigHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// Storefront quote flow.
		estimates.POST("/preview", estimateHandler.PreviewEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)

		// Tenant-admin dashboard.
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:id/assignment", estimateHandler.UpdateAssignment)
		estimates.PATCH("/:id/total", estimateHandler.UpdateTotal)
		estimates.POST("/:id/document", estimateHandler.GenerateDocument)
	}

	config := rg.Group(PathPricingConfig)
	{
		config.GET("", configHandler.GetPricingConfig)
		config.PUT("", configHandler.UpdatePricingConfig)
	}
}
