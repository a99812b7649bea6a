package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service status and storage connectivity
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Storage:   getStorageStatus(c.Request.Context(), deps),
		}

		status := http.StatusOK
		if response.Storage["status"] == "unhealthy" {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, response)
	}
}

// getStorageStatus returns the storage connection status
func getStorageStatus(ctx context.Context, deps *types.Dependencies) map[string]string {
	if deps == nil || deps.Repository == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.Repository.HealthCheck(ctx); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "healthy"}
}
