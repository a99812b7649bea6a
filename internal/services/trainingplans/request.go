package trainingplans

import (
	"fmt"
	"strings"

	apperrors "github.com/killallgit/scout-api/pkg/errors"
)

const (
	DefaultDuration = 8
	MaxDuration     = 52
)

// Request is the generate-training-plan request body
type Request struct {
	AthleteID  string   `json:"athleteId" example:"9b1d4c3e-2f6a-4e8b-a1c7-0d2e5f3a6b90"`
	CoachID    *string  `json:"coachId,omitempty"`
	Goals      []string `json:"goals,omitempty" example:"Improve first touch"`
	FocusAreas []string `json:"focusAreas,omitempty" example:"agility"`
	Duration   *int     `json:"duration,omitempty" example:"8"`
}

// Validate requires an athlete and bounds the duration
func (r *Request) Validate() error {
	r.AthleteID = strings.TrimSpace(r.AthleteID)
	if r.AthleteID == "" {
		return apperrors.MissingFieldError("Missing athleteId", "athleteId")
	}

	if r.CoachID != nil && strings.TrimSpace(*r.CoachID) == "" {
		r.CoachID = nil
	}

	if r.Duration != nil && (*r.Duration < 1 || *r.Duration > MaxDuration) {
		return apperrors.BadRequest(fmt.Sprintf("duration must be between 1 and %d weeks", MaxDuration)).
			WithDetail("duration", *r.Duration)
	}
	return nil
}

// Weeks returns the requested duration, DefaultDuration when omitted
func (r *Request) Weeks() int {
	if r.Duration == nil {
		return DefaultDuration
	}
	return *r.Duration
}
