package analysis

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

// DefaultParams are the sampling settings for video analysis
var DefaultParams = generator.Params{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 2048,
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository store.Repository
	generator  generator.Generator
	params     generator.Params
	logger     *logger.Logger
}

// NewService creates a new analysis service
func NewService(repository store.Repository, gen generator.Generator, params generator.Params, log *logger.Logger) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &ServiceImpl{
		repository: repository,
		generator:  gen,
		params:     params,
		logger:     log.With("pipeline", "analyze-video"),
	}
}

// Analyze runs the full pipeline for one video
func (s *ServiceImpl) Analyze(ctx context.Context, req Request) (*models.Assessment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := s.logger.With("video_id", req.VideoID, "athlete_id", req.AthleteID)
	log.Info("Analyzing video")

	video, athlete, err := s.loadContext(ctx, req)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, BuildPrompt(video, athlete), s.params)
	if err != nil {
		if _, ok := apperrors.As(err); !ok {
			err = apperrors.UpstreamError("model", err)
		}
		return nil, err
	}

	result := jsonextract.ParseOrDefault(text, ValidateResult, FallbackResult)
	if result.Fallback {
		log.Warn("Model output unusable, using fallback assessment", "reason", result.Reason)
	}

	assessment := newAssessment(req, result.Value, result.Raw)
	if err := s.repository.CreateAssessment(ctx, assessment); err != nil {
		return nil, apperrors.PersistenceError("insert assessment", err)
	}

	// The assessment is already stored; a failed flag update leaves the video
	// unmarked but does not fail the request.
	if err := s.repository.MarkVideoAnalyzed(ctx, req.VideoID); err != nil {
		log.Warn("Failed to mark video analyzed", "assessment_id", assessment.ID, "error", err)
	}

	log.Info("Analysis completed", "assessment_id", assessment.ID, "fallback", result.Fallback)
	return assessment, nil
}

// ListForAthlete returns the athlete's assessments, newest first
func (s *ServiceImpl) ListForAthlete(ctx context.Context, athleteID string) ([]models.Assessment, error) {
	if _, err := s.repository.GetAthlete(ctx, athleteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Athlete", athleteID)
		}
		return nil, apperrors.PersistenceError("read athlete", err)
	}
	assessments, err := s.repository.ListAssessments(ctx, athleteID)
	if err != nil {
		return nil, apperrors.PersistenceError("list assessments", err)
	}
	return assessments, nil
}

func (s *ServiceImpl) loadContext(ctx context.Context, req Request) (*models.Video, *models.Athlete, error) {
	video, err := s.repository.GetVideo(ctx, req.VideoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperrors.NotFound("Video", req.VideoID)
		}
		return nil, nil, apperrors.PersistenceError("read video", err)
	}

	athlete, err := s.repository.GetAthlete(ctx, req.AthleteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperrors.NotFound("Athlete", req.AthleteID)
		}
		return nil, nil, apperrors.PersistenceError("read athlete", err)
	}

	return video, athlete, nil
}

func newAssessment(req Request, r Result, raw []byte) *models.Assessment {
	return &models.Assessment{
		VideoID:          req.VideoID,
		AthleteID:        req.AthleteID,
		OverallScore:     value(r.OverallScore),
		TechniqueScore:   value(r.TechniqueScore),
		SpeedScore:       value(r.SpeedScore),
		PowerScore:       value(r.PowerScore),
		EnduranceScore:   value(r.EnduranceScore),
		FlexibilityScore: value(r.FlexibilityScore),
		Strengths:        datatypes.JSONSlice[string](r.Strengths),
		Weaknesses:       datatypes.JSONSlice[string](r.Weaknesses),
		Recommendations:  datatypes.JSONSlice[string](r.Recommendations),
		DetailedFeedback: r.DetailedFeedback,
		AIConfidence:     value(r.AIConfidence),
		AnalysisData:     datatypes.JSON(raw),
	}
}
