package athletes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// RegisterRoutes registers athlete read routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/assessments", GetAssessments(deps))
	router.GET("/:id/training-plans", GetTrainingPlans(deps))
}
