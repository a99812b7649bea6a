package analysis

import (
	"context"

	"github.com/killallgit/scout-api/internal/models"
)

// Service runs the video analysis pipeline
type Service interface {
	// Analyze validates the request, scores the video with the model and
	// persists one new Assessment. A model reply that cannot be parsed is
	// replaced by FallbackResult rather than reported as an error.
	Analyze(ctx context.Context, req Request) (*models.Assessment, error)

	// ListForAthlete returns the athlete's assessments, newest first
	ListForAthlete(ctx context.Context, athleteID string) ([]models.Assessment, error)
}
