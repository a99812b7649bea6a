package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        "Scout API",
			Version:     version,
			Description: "AI video analysis and training plan generation for athletes",
		})
	}
}
