package trainingplans

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/killallgit/scout-api/internal/models"
)

const planShapeTemplate = `{
  "title": "Training plan title",
  "description": "Brief description of the plan's objectives",
  "duration_weeks": %d,
  "difficulty_level": number (1-5),
  "goals": ["goal1", "goal2", "goal3"],
  "weeks": [
    {
      "week_number": 1,
      "focus": "Week focus theme",
      "days": [
        {
          "day": 1,
          "type": "training_type", // strength, cardio, skill, recovery, etc.
          "exercises": [
            {
              "name": "Exercise name",
              "sets": number,
              "reps": "reps or duration",
              "rest": "rest time",
              "notes": "technique notes or modifications"
            }
          ],
          "duration_minutes": number,
          "intensity": "low/medium/high"
        }
      ]
    }
  ],
  "nutrition_tips": ["tip1", "tip2", "tip3"],
  "recovery_guidelines": ["guideline1", "guideline2", "guideline3"],
  "progression_notes": "How to progress through the weeks",
  "safety_considerations": ["safety1", "safety2", "safety3"]
}`

// BuildPrompt renders the plan prompt. latest may be nil. It has no side
// effects and returns identical text for identical input.
func BuildPrompt(athlete *models.Athlete, latest *models.Assessment, req Request) string {
	weeks := req.Weeks()
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create a comprehensive %d-week training plan for an athlete with the following profile:\n\n", weeks)

	sb.WriteString("ATHLETE PROFILE:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", orNotSpecified(athlete.FullName()))
	fmt.Fprintf(&sb, "- Sport: %s\n", athlete.PrimarySport)
	fmt.Fprintf(&sb, "- Experience: %d years\n", athlete.Experience())
	fmt.Fprintf(&sb, "- Height: %s cm\n", measurement(athlete.HeightCM))
	fmt.Fprintf(&sb, "- Weight: %s kg\n", measurement(athlete.WeightKG))
	if athlete.PreferredPosition != nil && *athlete.PreferredPosition != "" {
		fmt.Fprintf(&sb, "- Position: %s\n", *athlete.PreferredPosition)
	}

	if latest != nil {
		sb.WriteString("\nLATEST ASSESSMENT SCORES:\n")
		fmt.Fprintf(&sb, "- Overall: %s/100\n", number(latest.OverallScore))
		fmt.Fprintf(&sb, "- Technique: %s/100\n", number(latest.TechniqueScore))
		fmt.Fprintf(&sb, "- Speed: %s/100\n", number(latest.SpeedScore))
		fmt.Fprintf(&sb, "- Power: %s/100\n", number(latest.PowerScore))
		fmt.Fprintf(&sb, "- Endurance: %s/100\n", number(latest.EnduranceScore))
		fmt.Fprintf(&sb, "- Flexibility: %s/100\n", number(latest.FlexibilityScore))
		fmt.Fprintf(&sb, "\nSTRENGTHS: %s\n", strings.Join(latest.Strengths, ", "))
		fmt.Fprintf(&sb, "WEAKNESSES: %s\n", strings.Join(latest.Weaknesses, ", "))
	}

	if len(req.Goals) > 0 || len(req.FocusAreas) > 0 {
		sb.WriteString("\n")
	}
	if len(req.Goals) > 0 {
		fmt.Fprintf(&sb, "ATHLETE GOALS: %s\n", strings.Join(req.Goals, ", "))
	}
	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&sb, "FOCUS AREAS: %s\n", strings.Join(req.FocusAreas, ", "))
	}

	sb.WriteString("\nPlease generate a detailed training plan in the following JSON format:\n\n")
	fmt.Fprintf(&sb, planShapeTemplate, weeks)

	sb.WriteString("\n\nREQUIREMENTS:\n")
	for i, requirement := range requirements(weeks) {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, requirement)
	}
	sb.WriteString("\nMake it practical for implementation in various training environments, ")
	sb.WriteString("including limited equipment scenarios common in rural India.\n")

	return sb.String()
}

func requirements(weeks int) []string {
	return []string{
		fmt.Sprintf("Create a progressive plan that builds intensity over %d weeks", weeks),
		"Include sport-specific exercises and drills",
		"Address the athlete's weaknesses identified in assessments",
		"Include proper warm-up, main exercises, and cool-down for each session",
		"Provide 4-6 training days per week with rest/recovery days",
		"Include injury prevention exercises",
		"Scale difficulty appropriately for the athlete's experience level",
		"Include both physical and technical development",
		"Provide clear exercise instructions and safety notes",
		"Consider equipment limitations (basic equipment availability)",
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func measurement(v *float64) string {
	if v == nil || *v == 0 {
		return "Not specified"
	}
	return number(*v)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
