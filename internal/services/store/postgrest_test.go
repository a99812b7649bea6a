package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/killallgit/scout-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostgREST serves canned rows per table and records writes
type fakePostgREST struct {
	t        *testing.T
	rows     map[string]string
	inserted map[string][]byte
	patched  map[string]string
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "service-key", r.Header.Get("apikey"))
	assert.Equal(f.t, "Bearer service-key", r.Header.Get("Authorization"))

	table := r.URL.Path[len("/rest/v1/"):]
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		body, ok := f.rows[table+"?"+r.URL.Query().Get("id")]
		if !ok {
			body, ok = f.rows[table]
		}
		if !ok {
			body = "[]"
		}
		io.WriteString(w, body)
	case http.MethodPost:
		data, _ := io.ReadAll(r.Body)
		f.inserted[table] = data
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("[" + string(data) + "]"))
	case http.MethodPatch:
		data, _ := io.ReadAll(r.Body)
		f.patched[table+"?"+r.URL.Query().Get("id")] = string(data)
		if r.URL.Query().Get("id") == "eq.missing" {
			io.WriteString(w, "[]")
			return
		}
		io.WriteString(w, `[{"id":"v-1","is_analyzed":true}]`)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func setupPostgREST(t *testing.T, rows map[string]string) (*PostgRESTRepository, *fakePostgREST) {
	t.Helper()
	fake := &fakePostgREST{t: t, rows: rows, inserted: map[string][]byte{}, patched: map[string]string{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewPostgRESTRepository(server.URL, "service-key"), fake
}

func TestPostgREST_GetVideo(t *testing.T) {
	repo, _ := setupPostgREST(t, map[string]string{
		"videos?eq.v-1": `[{"id":"v-1","athlete_id":"a-1","sport_type":"football","video_type":"match","is_analyzed":false}]`,
	})

	video, err := repo.GetVideo(context.Background(), "v-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", video.AthleteID)
	assert.Equal(t, "match", video.VideoType)

	_, err = repo.GetVideo(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgREST_GetAthleteEmbedsProfile(t *testing.T) {
	repo, _ := setupPostgREST(t, map[string]string{
		"athletes?eq.a-1": `[{"id":"a-1","primary_sport":"basketball","experience_years":6,"preferred_position":null,"profiles":{"id":"p-1","full_name":"Sam Reyes"}}]`,
	})

	athlete, err := repo.GetAthlete(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Sam Reyes", athlete.FullName())
	assert.Equal(t, 6, athlete.Experience())
	assert.Nil(t, athlete.PreferredPosition)
}

func TestPostgREST_LatestAssessmentSortsNewestFirst(t *testing.T) {
	repo, _ := setupPostgREST(t, map[string]string{
		"assessments": `[
			{"id":"old","athlete_id":"a-1","created_at":"2024-01-01T00:00:00Z","overall_score":50},
			{"id":"new","athlete_id":"a-1","created_at":"2024-03-01T00:00:00Z","overall_score":90},
			{"id":"mid","athlete_id":"a-1","created_at":"2024-02-01T00:00:00Z","overall_score":70}
		]`,
	})

	latest, err := repo.LatestAssessment(context.Background(), "a-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "new", latest.ID)
}

func TestPostgREST_LatestAssessmentNone(t *testing.T) {
	repo, _ := setupPostgREST(t, map[string]string{})

	latest, err := repo.LatestAssessment(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestPostgREST_CreateAssessmentAssignsIdentity(t *testing.T) {
	repo, fake := setupPostgREST(t, map[string]string{})

	assessment := &models.Assessment{VideoID: "v-1", AthleteID: "a-1", OverallScore: 81}
	require.NoError(t, repo.CreateAssessment(context.Background(), assessment))

	assert.NotEmpty(t, assessment.ID)
	assert.WithinDuration(t, time.Now(), assessment.CreatedAt, time.Minute)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(fake.inserted["assessments"], &sent))
	assert.Equal(t, assessment.ID, sent["id"])
	assert.Equal(t, 81.0, sent["overall_score"])
}

func TestPostgREST_MarkVideoAnalyzed(t *testing.T) {
	repo, fake := setupPostgREST(t, map[string]string{})

	require.NoError(t, repo.MarkVideoAnalyzed(context.Background(), "v-1"))
	assert.JSONEq(t, `{"is_analyzed":true}`, fake.patched["videos?eq.v-1"])

	assert.ErrorIs(t, repo.MarkVideoAnalyzed(context.Background(), "missing"), ErrNotFound)
}

func TestPostgREST_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"code":"XX000","message":"boom","details":null,"hint":null}`)
	}))
	defer server.Close()

	repo := NewPostgRESTRepository(server.URL, "service-key")
	_, err := repo.GetVideo(context.Background(), "v-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPostgREST_CancelledContext(t *testing.T) {
	repo, _ := setupPostgREST(t, map[string]string{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetVideo(ctx, "v-1")
	assert.ErrorIs(t, err, context.Canceled)
}
