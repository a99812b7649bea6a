package store

import (
	"context"
	"errors"

	"github.com/killallgit/scout-api/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist
var ErrNotFound = errors.New("record not found")

// Repository is the narrow read/insert/update contract the pipelines need
// from relational storage. Nothing is ever deleted through it.
type Repository interface {
	// Read operations
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	GetAthlete(ctx context.Context, id string) (*models.Athlete, error)
	// LatestAssessment returns nil, nil when the athlete has no assessments
	LatestAssessment(ctx context.Context, athleteID string) (*models.Assessment, error)
	ListAssessments(ctx context.Context, athleteID string) ([]models.Assessment, error)
	ListTrainingPlans(ctx context.Context, athleteID string, activeOnly bool) ([]models.TrainingPlan, error)

	// Create operations
	CreateAssessment(ctx context.Context, assessment *models.Assessment) error
	CreateTrainingPlan(ctx context.Context, plan *models.TrainingPlan) error

	// Update operations
	MarkVideoAnalyzed(ctx context.Context, videoID string) error

	HealthCheck(ctx context.Context) error
}
