package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/scout-api/internal/database"
	"github.com/killallgit/scout-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements Repository over GORM (sqlite or postgres)
type RepositoryImpl struct {
	db *database.DB
}

// NewRepository creates a new GORM-backed repository
func NewRepository(db *database.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetVideo retrieves a video by its ID
func (r *RepositoryImpl) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

// GetAthlete retrieves an athlete with its profile
func (r *RepositoryImpl) GetAthlete(ctx context.Context, id string) (*models.Athlete, error) {
	var athlete models.Athlete
	if err := r.db.WithContext(ctx).Preload("Profile").First(&athlete, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting athlete: %w", err)
	}
	return &athlete, nil
}

// LatestAssessment retrieves the newest assessment for an athlete
func (r *RepositoryImpl) LatestAssessment(ctx context.Context, athleteID string) (*models.Assessment, error) {
	var assessments []models.Assessment
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Limit(1).
		Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("getting latest assessment: %w", err)
	}
	if len(assessments) == 0 {
		return nil, nil
	}
	return &assessments[0], nil
}

// ListAssessments retrieves all assessments for an athlete, newest first
func (r *RepositoryImpl) ListAssessments(ctx context.Context, athleteID string) ([]models.Assessment, error) {
	assessments := []models.Assessment{}
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	return assessments, nil
}

// ListTrainingPlans retrieves training plans for an athlete, newest first
func (r *RepositoryImpl) ListTrainingPlans(ctx context.Context, athleteID string, activeOnly bool) ([]models.TrainingPlan, error) {
	plans := []models.TrainingPlan{}
	query := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("listing training plans: %w", err)
	}
	return plans, nil
}

// CreateAssessment inserts a new assessment
func (r *RepositoryImpl) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if err := r.db.WithContext(ctx).Create(assessment).Error; err != nil {
		return fmt.Errorf("creating assessment: %w", err)
	}
	return nil
}

// CreateTrainingPlan inserts a new training plan
func (r *RepositoryImpl) CreateTrainingPlan(ctx context.Context, plan *models.TrainingPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("creating training plan: %w", err)
	}
	return nil
}

// MarkVideoAnalyzed flips the analyzed flag on a video
func (r *RepositoryImpl) MarkVideoAnalyzed(ctx context.Context, videoID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", videoID).
		Update("is_analyzed", true)
	if result.Error != nil {
		return fmt.Errorf("marking video analyzed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HealthCheck pings the database
func (r *RepositoryImpl) HealthCheck(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
