package types

import "github.com/killallgit/scout-api/internal/models"

// ErrorResponse is the error envelope for every failed request
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// AssessmentResponse is returned by the analyze-video endpoint
type AssessmentResponse struct {
	Success    bool               `json:"success"`
	Assessment *models.Assessment `json:"assessment"`
	Message    string             `json:"message"`
}

// TrainingPlanResponse is returned by the generate-training-plan endpoint
type TrainingPlanResponse struct {
	Success      bool                 `json:"success"`
	TrainingPlan *models.TrainingPlan `json:"training_plan"`
	Message      string               `json:"message"`
}

// AssessmentsResponse lists an athlete's assessments
type AssessmentsResponse struct {
	AthleteID   string              `json:"athlete_id"`
	Assessments []models.Assessment `json:"assessments"`
	Count       int                 `json:"count"`
}

// TrainingPlansResponse lists an athlete's training plans
type TrainingPlansResponse struct {
	AthleteID     string                `json:"athlete_id"`
	TrainingPlans []models.TrainingPlan `json:"training_plans"`
	Count         int                   `json:"count"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Storage   map[string]string `json:"storage"`
}

// VersionResponse for the version endpoint
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}
