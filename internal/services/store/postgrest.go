package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/scout-api/internal/models"
	"github.com/supabase-community/postgrest-go"
)

const (
	tableVideos        = "videos"
	tableAthletes      = "athletes"
	tableAssessments   = "assessments"
	tableTrainingPlans = "training_plans"
)

// PostgRESTRepository implements Repository against a Supabase project's
// REST endpoint using the service-role key.
type PostgRESTRepository struct {
	client *postgrest.Client
}

// NewPostgRESTRepository creates a repository for the project at baseURL.
// baseURL is the project URL; the /rest/v1 suffix is added when missing.
func NewPostgRESTRepository(baseURL, serviceKey string) *PostgRESTRepository {
	restURL := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(restURL, "/rest/v1") {
		restURL += "/rest/v1"
	}
	headers := map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	}
	return &PostgRESTRepository{client: postgrest.NewClient(restURL, "public", headers)}
}

// GetVideo retrieves a video by its ID
func (r *PostgRESTRepository) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.Video
	if _, err := r.client.From(tableVideos).Select("*", "", false).Eq("id", id).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("getting video: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// GetAthlete retrieves an athlete with its embedded profile
func (r *PostgRESTRepository) GetAthlete(ctx context.Context, id string) (*models.Athlete, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.Athlete
	if _, err := r.client.From(tableAthletes).Select("*,profiles(*)", "", false).Eq("id", id).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("getting athlete: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// LatestAssessment retrieves the newest assessment for an athlete
func (r *PostgRESTRepository) LatestAssessment(ctx context.Context, athleteID string) (*models.Assessment, error) {
	assessments, err := r.ListAssessments(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, nil
	}
	return &assessments[0], nil
}

// ListAssessments retrieves all assessments for an athlete, newest first
func (r *PostgRESTRepository) ListAssessments(ctx context.Context, athleteID string) ([]models.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assessments := []models.Assessment{}
	if _, err := r.client.From(tableAssessments).Select("*", "", false).Eq("athlete_id", athleteID).ExecuteTo(&assessments); err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.After(assessments[j].CreatedAt)
	})
	return assessments, nil
}

// ListTrainingPlans retrieves training plans for an athlete, newest first
func (r *PostgRESTRepository) ListTrainingPlans(ctx context.Context, athleteID string, activeOnly bool) ([]models.TrainingPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := r.client.From(tableTrainingPlans).Select("*", "", false).Eq("athlete_id", athleteID)
	if activeOnly {
		query = query.Eq("is_active", "true")
	}
	plans := []models.TrainingPlan{}
	if _, err := query.ExecuteTo(&plans); err != nil {
		return nil, fmt.Errorf("listing training plans: %w", err)
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

// CreateAssessment inserts a new assessment and copies back the stored row
func (r *PostgRESTRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if assessment.ID == "" {
		assessment.ID = uuid.New().String()
	}
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now().UTC()
	}

	var rows []models.Assessment
	if _, err := r.client.From(tableAssessments).Insert(assessment, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return fmt.Errorf("creating assessment: %w", err)
	}
	if len(rows) > 0 {
		*assessment = rows[0]
	}
	return nil
}

// CreateTrainingPlan inserts a new training plan and copies back the stored row
func (r *PostgRESTRepository) CreateTrainingPlan(ctx context.Context, plan *models.TrainingPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	var rows []models.TrainingPlan
	if _, err := r.client.From(tableTrainingPlans).Insert(plan, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return fmt.Errorf("creating training plan: %w", err)
	}
	if len(rows) > 0 {
		*plan = rows[0]
	}
	return nil
}

// MarkVideoAnalyzed flips the analyzed flag on a video
func (r *PostgRESTRepository) MarkVideoAnalyzed(ctx context.Context, videoID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var rows []models.Video
	patch := map[string]any{"is_analyzed": true}
	if _, err := r.client.From(tableVideos).Update(patch, "representation", "").Eq("id", videoID).ExecuteTo(&rows); err != nil {
		return fmt.Errorf("marking video analyzed: %w", err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// HealthCheck issues a trivial head-count query against the videos table
func (r *PostgRESTRepository) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := r.client.From(tableVideos).Select("id", "exact", true).Execute(); err != nil {
		return fmt.Errorf("postgrest health check failed: %w", err)
	}
	return nil
}
