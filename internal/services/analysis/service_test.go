package analysis

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/killallgit/scout-api/internal/database"
	"github.com/killallgit/scout-api/internal/models"
	"github.com/killallgit/scout-api/internal/services/generator"
	"github.com/killallgit/scout-api/internal/services/store"
	apperrors "github.com/killallgit/scout-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGenerator is a mock implementation of the generator.Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, params generator.Params) (string, error) {
	args := m.Called(ctx, prompt, params)
	return args.String(0), args.Error(1)
}

// flakyRepository fails selected writes on top of a real repository
type flakyRepository struct {
	store.Repository
	createErr error
	markErr   error
}

func (r *flakyRepository) CreateAssessment(ctx context.Context, a *models.Assessment) error {
	if r.createErr != nil {
		return r.createErr
	}
	return r.Repository.CreateAssessment(ctx, a)
}

func (r *flakyRepository) MarkVideoAnalyzed(ctx context.Context, videoID string) error {
	if r.markErr != nil {
		return r.markErr
	}
	return r.Repository.MarkVideoAnalyzed(ctx, videoID)
}

type fixture struct {
	db      *database.DB
	repo    store.Repository
	video   *models.Video
	athlete *models.Athlete
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Initialize(database.Options{Path: filepath.Join(t.TempDir(), "analysis.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	years := 3
	athlete := &models.Athlete{
		Profile:         &models.Profile{FullName: "Jordan Lee"},
		PrimarySport:    "basketball",
		ExperienceYears: &years,
	}
	require.NoError(t, db.Create(athlete).Error)

	video := &models.Video{AthleteID: athlete.ID, SportType: "basketball", VideoType: "practice"}
	require.NoError(t, db.Create(video).Error)

	return &fixture{db: db, repo: store.NewRepository(db), video: video, athlete: athlete}
}

func (f *fixture) countAssessments(t *testing.T) int64 {
	var n int64
	require.NoError(t, f.db.Model(&models.Assessment{}).Count(&n).Error)
	return n
}

func TestAnalyze_Success(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.AnythingOfType("string"), DefaultParams).Return(validReply, nil)

	svc := NewService(f.repo, gen, DefaultParams, nil)
	assessment, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})
	require.NoError(t, err)

	assert.NotEmpty(t, assessment.ID)
	assert.Equal(t, f.video.ID, assessment.VideoID)
	assert.Equal(t, 82.0, assessment.OverallScore)
	assert.Equal(t, 88.0, assessment.AIConfidence)
	assert.Contains(t, string(assessment.AnalysisData), `"technique_score": 78`)

	video, err := f.repo.GetVideo(context.Background(), f.video.ID)
	require.NoError(t, err)
	assert.True(t, video.IsAnalyzed)

	gen.AssertExpectations(t)
}

func TestAnalyze_MissingVideoID(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)

	svc := NewService(f.repo, gen, DefaultParams, nil)
	_, err := svc.Analyze(context.Background(), Request{AthleteID: f.athlete.ID})

	require.Error(t, err)
	assert.Equal(t, 400, apperrors.GetHTTPCode(err))
	assert.Zero(t, f.countAssessments(t))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyze_NotFound(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	svc := NewService(f.repo, gen, DefaultParams, nil)

	t.Run("unknown athlete", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: "nobody"})
		require.Error(t, err)
		assert.Equal(t, 404, apperrors.GetHTTPCode(err))
		appErr, _ := apperrors.As(err)
		assert.Equal(t, "Athlete not found", appErr.Message)
	})

	t.Run("unknown video is checked first", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), Request{VideoID: "nothing", AthleteID: "nobody"})
		require.Error(t, err)
		appErr, _ := apperrors.As(err)
		assert.Equal(t, "Video not found", appErr.Message)
	})

	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("status 500"))

	svc := NewService(f.repo, gen, DefaultParams, nil)
	_, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUpstream, apperrors.GetCode(err))
	assert.Equal(t, 500, apperrors.GetHTTPCode(err))
	assert.Zero(t, f.countAssessments(t))

	video, _ := f.repo.GetVideo(context.Background(), f.video.ID)
	assert.False(t, video.IsAnalyzed)
}

func TestAnalyze_FallbackOnProse(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("I could not see the athlete clearly in this clip.", nil)

	svc := NewService(f.repo, gen, DefaultParams, nil)
	assessment, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})
	require.NoError(t, err)

	assert.Equal(t, 60.0, assessment.AIConfidence)
	assert.Equal(t, 75.0, assessment.OverallScore)
	assert.Equal(t, 65.0, assessment.FlexibilityScore)
	assert.Contains(t, []string(assessment.Strengths), "Consistent effort")
	assert.Contains(t, string(assessment.AnalysisData), `"ai_confidence":60`)
	assert.EqualValues(t, 1, f.countAssessments(t))
}

func TestAnalyze_DuplicateRequestsCreateDuplicateRows(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(validReply, nil)

	svc := NewService(f.repo, gen, DefaultParams, nil)
	req := Request{VideoID: f.video.ID, AthleteID: f.athlete.ID}
	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.EqualValues(t, 2, f.countAssessments(t))
}

func TestAnalyze_InsertFailure(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(validReply, nil)

	repo := &flakyRepository{Repository: f.repo, createErr: errors.New("disk full")}
	svc := NewService(repo, gen, DefaultParams, nil)
	_, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePersistence, apperrors.GetCode(err))

	video, _ := f.repo.GetVideo(context.Background(), f.video.ID)
	assert.False(t, video.IsAnalyzed)
}

func TestAnalyze_FlagUpdateFailureStillSucceeds(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(validReply, nil)

	repo := &flakyRepository{Repository: f.repo, markErr: errors.New("connection reset")}
	svc := NewService(repo, gen, DefaultParams, nil)
	assessment, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})

	require.NoError(t, err)
	assert.NotEmpty(t, assessment.ID)
	assert.EqualValues(t, 1, f.countAssessments(t))
}

func TestListForAthlete(t *testing.T) {
	f := setupFixture(t)
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return(validReply, nil)
	svc := NewService(f.repo, gen, DefaultParams, nil)

	_, err := svc.Analyze(context.Background(), Request{VideoID: f.video.ID, AthleteID: f.athlete.ID})
	require.NoError(t, err)

	assessments, err := svc.ListForAthlete(context.Background(), f.athlete.ID)
	require.NoError(t, err)
	assert.Len(t, assessments, 1)

	_, err = svc.ListForAthlete(context.Background(), "nobody")
	assert.Equal(t, 404, apperrors.GetHTTPCode(err))
}
