package trainingplans

import (
	"context"

	"github.com/killallgit/scout-api/internal/models"
)

// Service runs the training plan pipeline
type Service interface {
	// Generate builds and persists one new active plan for the athlete.
	// Earlier plans are left untouched.
	Generate(ctx context.Context, req Request) (*models.TrainingPlan, error)

	// ListForAthlete returns the athlete's plans, newest first
	ListForAthlete(ctx context.Context, athleteID string, activeOnly bool) ([]models.TrainingPlan, error)
}
