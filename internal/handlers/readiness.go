package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ReadinessHandler answers 200 when the database responds, 503 otherwise
// GET /ready
func ReadinessHandler(checker HealthChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checker.HealthCheck(c.Request.Context()); err != nil {
			logger.Warn("readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, ReadinessResponse{
				Status: "DOWN",
				Error:  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, ReadinessResponse{Status: "UP"})
	}
}
