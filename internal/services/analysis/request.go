package analysis

import (
	"strings"

	apperrors "github.com/killallgit/scout-api/pkg/errors"
)

// Request is the analyze-video request body
type Request struct {
	VideoID   string `json:"videoId" example:"3f2c9a7e-0b7a-4c1e-9d51-5d0c2a1e8f10"`
	AthleteID string `json:"athleteId" example:"9b1d4c3e-2f6a-4e8b-a1c7-0d2e5f3a6b90"`
}

// Validate trims the identifiers and requires both
func (r *Request) Validate() error {
	r.VideoID = strings.TrimSpace(r.VideoID)
	r.AthleteID = strings.TrimSpace(r.AthleteID)

	if r.VideoID == "" || r.AthleteID == "" {
		var missing []string
		if r.VideoID == "" {
			missing = append(missing, "videoId")
		}
		if r.AthleteID == "" {
			missing = append(missing, "athleteId")
		}
		return apperrors.MissingFieldError("Missing videoId or athleteId", missing...)
	}
	return nil
}
