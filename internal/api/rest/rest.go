package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/artblock/gallery-reconciler/internal/api/middleware"
)

// SetupRoutes configures all REST API routes on the given router
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Curator routes require a wallet-bound JWT
	curator := v1.Group("", middleware.CuratorAuth(authCfg))
	{
		curator.POST("/galleries", handler.RegisterGallery)
		curator.GET("/galleries", handler.ListGalleries)
		curator.GET("/galleries/:id", handler.GetGallery)
		curator.POST("/galleries/:id/claim", handler.ClaimRevenue)
		curator.GET("/galleries/:id/claims", handler.GetClaimHistory)
		curator.PATCH("/galleries/:id/stats", handler.UpdateGalleryStats)
		curator.GET("/sale-split", handler.PreviewSaleSplit)
	}

	// Operator routes are API-key only
	operator := v1.Group("", middleware.APIKeyAuth(authCfg))
	{
		operator.PATCH("/galleries/:id/status", handler.SetGalleryStatus)
		operator.GET("/anomalies", handler.ListAnomalies)
	}
}
