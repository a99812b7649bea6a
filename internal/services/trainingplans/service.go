package trainingplans

import (
	"context"
	"errors"

	"github.com/killallgit/scout-api/internal/models"
	"github.com/killallgit/scout-api/internal/services/generator"
	"github.com/killallgit/scout-api/internal/services/store"
	apperrors "github.com/killallgit/scout-api/pkg/errors"
	"github.com/killallgit/scout-api/pkg/jsonextract"
	"github.com/killallgit/scout-api/pkg/logger"
	"gorm.io/datatypes"
)

// DefaultParams are the sampling settings for plan generation
var DefaultParams = generator.Params{
	Temperature:     0.8,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 4096,
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository store.Repository
	generator  generator.Generator
	params     generator.Params
	logger     *logger.Logger
}

// NewService creates a new training plan service
func NewService(repository store.Repository, gen generator.Generator, params generator.Params, log *logger.Logger) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &ServiceImpl{
		repository: repository,
		generator:  gen,
		params:     params,
		logger:     log.With("pipeline", "generate-training-plan"),
	}
}

// Generate runs the full pipeline for one athlete
func (s *ServiceImpl) Generate(ctx context.Context, req Request) (*models.TrainingPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	weeks := req.Weeks()
	log := s.logger.With("athlete_id", req.AthleteID, "weeks", weeks)
	log.Info("Generating training plan")

	athlete, latest, err := s.loadContext(ctx, req.AthleteID)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, BuildPrompt(athlete, latest, req), s.params)
	if err != nil {
		if _, ok := apperrors.As(err); !ok {
			err = apperrors.UpstreamError("model", err)
		}
		return nil, err
	}

	fallback := func() Plan {
		return FallbackPlan(weeks, athlete.PrimarySport, athlete.Experience(), req.Goals)
	}
	result := jsonextract.ParseOrDefault(text, ValidatePlan, fallback)
	if result.Fallback {
		log.Warn("Model output unusable, using fallback plan", "reason", result.Reason)
	}

	plan, raw := result.Value, result.Raw
	if plan.DurationWeeks != weeks {
		log.Debug("Normalising plan duration", "model_weeks", plan.DurationWeeks)
		plan.DurationWeeks = weeks
		if patched, err := withDuration(raw, weeks); err == nil {
			raw = patched
		}
	}

	record := &models.TrainingPlan{
		AthleteID:       req.AthleteID,
		CoachID:         req.CoachID,
		SportType:       athlete.PrimarySport,
		Title:           plan.Title,
		Description:     plan.Description,
		DurationWeeks:   plan.DurationWeeks,
		DifficultyLevel: plan.DifficultyLevel,
		Goals:           datatypes.JSONSlice[string](plan.Goals),
		IsActive:        true,
		PlanData:        datatypes.JSON(raw),
	}
	if err := s.repository.CreateTrainingPlan(ctx, record); err != nil {
		return nil, apperrors.PersistenceError("insert training plan", err)
	}

	log.Info("Training plan generated", "plan_id", record.ID, "fallback", result.Fallback)
	return record, nil
}

// ListForAthlete returns the athlete's plans, newest first
func (s *ServiceImpl) ListForAthlete(ctx context.Context, athleteID string, activeOnly bool) ([]models.TrainingPlan, error) {
	if _, err := s.getAthlete(ctx, athleteID); err != nil {
		return nil, err
	}
	plans, err := s.repository.ListTrainingPlans(ctx, athleteID, activeOnly)
	if err != nil {
		return nil, apperrors.PersistenceError("list training plans", err)
	}
	return plans, nil
}

func (s *ServiceImpl) loadContext(ctx context.Context, athleteID string) (*models.Athlete, *models.Assessment, error) {
	athlete, err := s.getAthlete(ctx, athleteID)
	if err != nil {
		return nil, nil, err
	}

	latest, err := s.repository.LatestAssessment(ctx, athleteID)
	if err != nil {
		return nil, nil, apperrors.PersistenceError("read latest assessment", err)
	}
	return athlete, latest, nil
}

func (s *ServiceImpl) getAthlete(ctx context.Context, athleteID string) (*models.Athlete, error) {
	athlete, err := s.repository.GetAthlete(ctx, athleteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Athlete", athleteID)
		}
		return nil, apperrors.PersistenceError("read athlete", err)
	}
	return athlete, nil
}
