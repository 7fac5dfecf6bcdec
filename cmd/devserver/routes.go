package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/critique/client/api/rest/analyze"
	"codeberg.org/critique/client/api/rest/health"
	"codeberg.org/critique/client/internal/config"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, cfg *config.Config) {
	router.Use(CORSMiddleware())
	router.Use(RateLimitMiddleware())
	router.GET("/health", health.Handler)

	api := router.Group("/api")
	api.Use(AuthMiddleware(cfg.AuthSecret))

	{
		analyze.RegisterRoutes(api)
	}
}
