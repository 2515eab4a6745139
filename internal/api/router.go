package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/api/handlers"
	"github.com/cargoview/opsdash/internal/api/middleware"
	"github.com/cargoview/opsdash/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *handlers.Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.AuthMiddleware(deps.Repos, logger))
	{
		v1.POST("/shipments/load", handlers.HandleLoadShipments(deps))
		v1.GET("/shipments", handlers.HandleListShipments(deps))
		v1.GET("/shipments/export", handlers.HandleExportShipments(deps))
		v1.GET("/shipments/insights/options", handlers.HandleListInsightOptions(deps))
		v1.POST("/shipments/insights/apply", handlers.HandleApplyInsights(deps))
		v1.DELETE("/shipments/insights", handlers.HandleClearInsights(deps))

		v1.GET("/companies", handlers.HandleListCompanies(deps))

		v1.POST("/sms/by-containers", handlers.HandleSmsByContainers(deps))
		v1.POST("/sms", handlers.HandleCreateSms(deps))
		v1.PUT("/sms/:id", handlers.HandleUpdateSms(deps))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
