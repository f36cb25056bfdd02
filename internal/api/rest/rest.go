package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no path prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/", handler.Root)

		// Source catalog
		api.POST("/sources", handler.CreateSource)
		api.GET("/sources", handler.ListSources)
		api.GET("/sources/by-type/:type", handler.ListSourcesByType)
		api.GET("/sources/:id", handler.GetSource)
		api.PUT("/sources/:id", handler.UpdateSource)
		api.DELETE("/sources/:id", handler.DeleteSource)

		// Concurrent multi-source search
		api.POST("/search", handler.Search)

		// Default catalog seeding (no-op when the catalog is non-empty)
		api.POST("/seed", handler.Seed)
	}
}
