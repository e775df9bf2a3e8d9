package http

import (
	"github.com/gin-gonic/gin"

	"github.com/snackscan/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIPRPS, cfg.RateLimit.PerIPBurst))
	{
		v1.POST("/analyze", handler.AnalyzeImage)
		v1.GET("/nutrition/:name", handler.GetNutrition)
		v1.GET("/products", handler.ListProducts)
	}

	return router
}
