package analysis

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
	analysisService "github.com/killallgit/scout-api/internal/services/analysis"
)

// Post analyzes a video and stores a new assessment
// @Summary      Analyze a training video
// @Description  Scores an athlete's video with the generative model and stores a new assessment. If the model reply cannot be parsed a fixed fallback scorecard (ai_confidence 60) is stored instead.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body analysisService.Request true "Video and athlete identifiers"
// @Success      200 {object} types.AssessmentResponse "Stored assessment"
// @Failure      400 {object} types.ErrorResponse "Missing videoId or athleteId"
// @Failure      404 {object} types.ErrorResponse "Video or athlete not found"
// @Failure      500 {object} types.ErrorResponse "Model or storage failure"
// @Router       /functions/v1/analyze-video [post]
// @Router       /api/v1/analysis [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analysisService.Request
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		assessment, err := deps.AnalysisService.Analyze(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, deps.Log(), err)
			return
		}

		types.SendSuccess(c, types.AssessmentResponse{
			Success:    true,
			Assessment: assessment,
			Message:    "Video analysis completed successfully",
		})
	}
}
