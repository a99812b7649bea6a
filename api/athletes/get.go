package athletes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/scout-api/api/types"
)

// GetAssessments lists an athlete's assessments
// @Summary      List assessments for athlete
// @Description  Returns every stored assessment for the athlete, newest first
// @Tags         athletes
// @Produce      json
// @Param        id path string true "Athlete ID"
// @Success      200 {object} types.AssessmentsResponse
// @Failure      404 {object} types.ErrorResponse "Athlete not found"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/v1/athletes/{id}/assessments [get]
func GetAssessments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		athleteID := c.Param("id")

		assessments, err := deps.AnalysisService.ListForAthlete(c.Request.Context(), athleteID)
		if err != nil {
			types.SendError(c, deps.Log(), err)
			return
		}

		types.SendSuccess(c, types.AssessmentsResponse{
			AthleteID:   athleteID,
			Assessments: assessments,
			Count:       len(assessments),
		})
	}
}

// GetTrainingPlans lists an athlete's training plans
// @Summary      List training plans for athlete
// @Description  Returns the athlete's training plans, newest first. Several plans may be active at once.
// @Tags         athletes
// @Produce      json
// @Param        id path string true "Athlete ID"
// @Param        active query bool false "Only active plans"
// @Success      200 {object} types.TrainingPlansResponse
// @Failure      400 {object} types.ErrorResponse "Invalid active flag"
// @Failure      404 {object} types.ErrorResponse "Athlete not found"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/v1/athletes/{id}/training-plans [get]
func GetTrainingPlans(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		athleteID := c.Param("id")

		activeOnly := false
		if raw := c.Query("active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				types.SendBadRequest(c, "Invalid active parameter")
				return
			}
			activeOnly = parsed
		}

		plans, err := deps.TrainingPlanService.ListForAthlete(c.Request.Context(), athleteID, activeOnly)
		if err != nil {
			types.SendError(c, deps.Log(), err)
			return
		}

		types.SendSuccess(c, types.TrainingPlansResponse{
			AthleteID:     athleteID,
			TrainingPlans: plans,
			Count:         len(plans),
		})
	}
}
