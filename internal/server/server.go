// Package server provides HTTP server setup and configuration.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/handlers"
	"github.com/sebasr/hello-service/internal/middleware"
)

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config          *config.Config
	Logger          *zap.Logger
	GreetingService handlers.GreetingService
	Health          handlers.HealthChecker // Backs /ready
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger, "/ready", "/hello/health", "/api/hello/health"))

	// CORS for browser clients
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept-Encoding", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimit(deps.Config.RateLimit.Requests, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	helloHandler := handlers.NewHelloHandler(deps.GreetingService, logger, deps.Config.Server.ApplicationName)

	registerHelloRoutes(router.Group("/hello"), helloHandler)
	// Same routes under the legacy /api context path
	registerHelloRoutes(router.Group("/api/hello"), helloHandler)

	if deps.Health != nil {
		router.GET("/ready", handlers.ReadinessHandler(deps.Health, logger))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error:     "Resource not found",
			Timestamp: time.Now().UnixMilli(),
		})
	})

	return router
}

func registerHelloRoutes(group *gin.RouterGroup, h *handlers.HelloHandler) {
	group.GET("", h.Hello)
	group.GET("/formal", h.FormalHello)
	group.GET("/stats", h.Stats)
	group.GET("/count", h.Count)
	group.GET("/health", h.Health)

	greetings := group.Group("/greetings")
	{
		greetings.GET("", h.ListGreetings)
		greetings.GET("/by-name", h.GreetingsByName)
		greetings.DELETE("/by-name", h.DeleteGreetingsByName)
		greetings.GET("/search", h.SearchGreetings)
		greetings.GET("/by-prefix", h.GreetingsByPrefix)
		greetings.GET("/exists", h.GreetingExists)
		greetings.GET("/:id", h.GetGreeting)
		greetings.DELETE("/:id", h.DeleteGreeting)
	}
}
