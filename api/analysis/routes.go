package analysis

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// RegisterRoutes registers the analysis pipeline route on router
func RegisterRoutes(router gin.IRoutes, path string, deps *types.Dependencies) {
	router.POST(path, Post(deps))
}
