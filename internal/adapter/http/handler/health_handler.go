package handler

import (
	"net/http"
	"time"

	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that reports the health of all dependencies.
// With no optional backends enabled it is always healthy.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"ok":           allHealthy,
			"status":       status,
			"service":      logger.ServiceName,
			"now":          time.Now().UTC().Format(time.RFC3339),
			"dependencies": deps,
		})
	}
}
