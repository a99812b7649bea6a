package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"bad request", BadRequest("Missing athleteId"), http.StatusBadRequest},
		{"missing field", MissingFieldError("Missing videoId or athleteId", "videoId"), http.StatusBadRequest},
		{"not found", NotFound("Video", "v1"), http.StatusNotFound},
		{"upstream", UpstreamError("gemini", fmt.Errorf("status 500")), http.StatusInternalServerError},
		{"persistence", PersistenceError("insert assessment", fmt.Errorf("disk full")), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("loading: %w", NotFound("Athlete", "a1")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPCode(tt.err))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Video", "v1")
	assert.Equal(t, "Video not found", err.Message)
	assert.Equal(t, "v1", err.Details["id"])
	assert.True(t, err.Public())
}

func TestUpstreamErrorIsNotPublic(t *testing.T) {
	cause := fmt.Errorf("quota exhausted")
	err := UpstreamError("gemini", cause)

	assert.False(t, err.Public())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestAsAndIs(t *testing.T) {
	wrapped := fmt.Errorf("plan pipeline: %w", PersistenceError("insert training plan", fmt.Errorf("locked")))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodePersistence, appErr.Code)
	assert.True(t, Is(wrapped, ErrCodePersistence))
	assert.False(t, Is(wrapped, ErrCodeUpstream))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
}
