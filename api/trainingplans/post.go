package trainingplans

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
	planService "github.com/killallgit/scout-api/internal/services/trainingplans"
)

// Post generates and stores a new training plan
// @Summary      Generate a training plan
// @Description  Builds a multi-week plan from the athlete profile, latest assessment and optional goals, then stores it as active. Existing plans are not deactivated.
// @Tags         training-plans
// @Accept       json
// @Produce      json
// @Param        request body planService.Request true "Athlete and plan options (duration defaults to 8 weeks)"
// @Success      200 {object} types.TrainingPlanResponse "Stored training plan"
// @Failure      400 {object} types.ErrorResponse "Missing athleteId or invalid duration"
// @Failure      404 {object} types.ErrorResponse "Athlete not found"
// @Failure      500 {object} types.ErrorResponse "Model or storage failure"
// @Router       /functions/v1/generate-training-plan [post]
// @Router       /api/v1/training-plans [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req planService.Request
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		plan, err := deps.TrainingPlanService.Generate(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, deps.Log(), err)
			return
		}

		types.SendSuccess(c, types.TrainingPlanResponse{
			Success:      true,
			TrainingPlan: plan,
			Message:      "Training plan generated successfully",
		})
	}
}
