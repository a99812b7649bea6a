package trainingplans

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Plan is the structured training plan expected from the model
type Plan struct {
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description"`
	DurationWeeks        int      `json:"duration_weeks"`
	DifficultyLevel      int      `json:"difficulty_level" validate:"gte=1,lte=5"`
	Goals                []string `json:"goals" validate:"required"`
	Weeks                []Week   `json:"weeks" validate:"required,min=1,dive"`
	NutritionTips        []string `json:"nutrition_tips"`
	RecoveryGuidelines   []string `json:"recovery_guidelines"`
	ProgressionNotes     string   `json:"progression_notes"`
	SafetyConsiderations []string `json:"safety_considerations"`
}

type Week struct {
	WeekNumber int    `json:"week_number" validate:"gte=1"`
	Focus      string `json:"focus" validate:"required"`
	Days       []Day  `json:"days" validate:"required,min=1,dive"`
}

type Day struct {
	Day             int        `json:"day" validate:"gte=1"`
	Type            string     `json:"type" validate:"required"`
	Exercises       []Exercise `json:"exercises" validate:"required,min=1,dive"`
	DurationMinutes int        `json:"duration_minutes" validate:"gte=0"`
	Intensity       string     `json:"intensity" validate:"oneof=low medium high"`
}

type Exercise struct {
	Name  string     `json:"name" validate:"required"`
	Sets  int        `json:"sets" validate:"gte=0"`
	Reps  FlexString `json:"reps"`
	Rest  FlexString `json:"rest"`
	Notes string     `json:"notes"`
}

// FlexString decodes from either a JSON string or a number. Models often
// answer "reps": 12 where "12" was asked for.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// ValidatePlan checks a decoded plan against the plan schema
func ValidatePlan(p *Plan) error {
	if p == nil {
		return errors.New("nil training plan")
	}
	return validate.Struct(p)
}

var defaultGoals = []string{
	"Improve overall fitness",
	"Enhance technique",
	"Build strength and endurance",
}

// FallbackPlan builds the fixed progressive plan used when the model reply
// cannot be parsed
func FallbackPlan(weeks int, sport string, experienceYears int, goals []string) Plan {
	if len(goals) == 0 {
		goals = defaultGoals
	}

	schedule := make([]Week, weeks)
	for i := range schedule {
		schedule[i] = Week{
			WeekNumber: i + 1,
			Focus:      weekFocus(i),
			Days: []Day{{
				Day:  1,
				Type: "strength",
				Exercises: []Exercise{
					{Name: "Bodyweight Squats", Sets: 3, Reps: "12-15", Rest: "60s", Notes: "Focus on proper form"},
					{Name: "Push-ups", Sets: 3, Reps: "8-12", Rest: "60s", Notes: "Modify as needed"},
					{Name: "Plank", Sets: 3, Reps: "30-45s", Rest: "60s", Notes: "Maintain straight line"},
				},
				DurationMinutes: 45,
				Intensity:       "medium",
			}},
		}
	}

	return Plan{
		Title:                strconv.Itoa(weeks) + "-Week " + sport + " Development Plan",
		Description:          "A comprehensive training program designed to improve overall athletic performance",
		DurationWeeks:        weeks,
		DifficultyLevel:      fallbackDifficulty(experienceYears),
		Goals:                append([]string(nil), goals...),
		Weeks:                schedule,
		NutritionTips:        []string{"Stay hydrated", "Eat balanced meals", "Include protein for recovery"},
		RecoveryGuidelines:   []string{"Get 7-9 hours of sleep", "Include rest days", "Listen to your body"},
		ProgressionNotes:     "Gradually increase intensity and complexity over the weeks",
		SafetyConsiderations: []string{"Warm up properly", "Use correct form", "Stop if you feel pain"},
	}
}

// weekFocus maps a zero-based week index onto the two-week phase themes
func weekFocus(i int) string {
	switch {
	case i < 2:
		return "Foundation Building"
	case i < 4:
		return "Skill Development"
	case i < 6:
		return "Performance Enhancement"
	default:
		return "Competition Preparation"
	}
}

func fallbackDifficulty(experienceYears int) int {
	level := experienceYears + 1
	if level > 5 {
		level = 5
	}
	if level < 1 {
		level = 1
	}
	return level
}

// withDuration rewrites duration_weeks in the raw plan object
func withDuration(raw json.RawMessage, weeks int) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["duration_weeks"] = json.RawMessage(strconv.Itoa(weeks))
	return json.Marshal(fields)
}
