package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/space-ranger/ship-registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Series catalog (public read access)
		v1.GET("/series", handler.ListSeries)
		v1.GET("/series/:id", handler.GetSeries)

		// Series creation (requires authentication, owner only)
		v1.POST("/series", middleware.Auth(authCfg), handler.CreateSeries)

		// Minting (requires authentication)
		v1.POST("/ships/mint", middleware.Auth(authCfg), handler.MintShip)

		// Ship lookup (public read access)
		v1.GET("/ships/:id", handler.GetShip)
		v1.GET("/ships/:id/owner", handler.GetShipOwner)

		// Account views (public read access)
		v1.GET("/accounts/:account/ships", handler.GetAccountShips)
		v1.GET("/accounts/:account/score", handler.GetScore)

		// Score additions (open, no authentication required)
		v1.POST("/accounts/:account/score", handler.AddScore)

		// Registry counters (public read access)
		v1.GET("/stats", handler.GetStats)
	}
}
