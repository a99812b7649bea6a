package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/killallgit/scout-api/internal/models"
)

const resultShape = `{
  "overall_score": number (0-100),
  "technique_score": number (0-100),
  "speed_score": number (0-100),
  "power_score": number (0-100),
  "endurance_score": number (0-100),
  "flexibility_score": number (0-100),
  "strengths": ["strength1", "strength2", "strength3"],
  "weaknesses": ["weakness1", "weakness2", "weakness3"],
  "recommendations": ["recommendation1", "recommendation2", "recommendation3"],
  "detailed_feedback": "Comprehensive feedback paragraph about the athlete's performance, technique, and areas for improvement",
  "ai_confidence": number (0-100)
}`

var focusAreas = []string{
	"Technical execution and form",
	"Athletic performance metrics",
	"Areas for improvement",
	"Specific actionable recommendations",
	"Injury prevention insights",
}

// BuildPrompt renders the analysis prompt for a video and athlete. It has no
// side effects and returns identical text for identical input.
func BuildPrompt(video *models.Video, athlete *models.Athlete) string {
	var sb strings.Builder

	sb.WriteString("Analyze this sports training video for an athlete with the following details:\n")
	fmt.Fprintf(&sb, "- Sport: %s\n", video.SportType)
	fmt.Fprintf(&sb, "- Video Type: %s\n", video.VideoType)
	fmt.Fprintf(&sb, "- Athlete Experience: %d years\n", athlete.Experience())
	fmt.Fprintf(&sb, "- Height: %s cm\n", measurement(athlete.HeightCM))
	fmt.Fprintf(&sb, "- Weight: %s kg\n", measurement(athlete.WeightKG))

	sb.WriteString("\nPlease provide a comprehensive analysis in the following JSON format:\n")
	sb.WriteString(resultShape)
	sb.WriteString("\n\nFocus on:\n")
	for i, area := range focusAreas {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, area)
	}
	sb.WriteString("\nProvide realistic scores based on the sport and video type. ")
	sb.WriteString("Be constructive and encouraging while highlighting areas for development.\n")

	return sb.String()
}

// measurement formats an optional body measurement; unknown or zero is "Not specified"
func measurement(v *float64) string {
	if v == nil || *v == 0 {
		return "Not specified"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
