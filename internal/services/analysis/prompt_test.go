package analysis

import (
	"testing"

	"github.com/killallgit/scout-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	years := 5
	height := 182.5
	video := &models.Video{SportType: "basketball", VideoType: "practice"}
	athlete := &models.Athlete{ExperienceYears: &years, HeightCM: &height}

	prompt := BuildPrompt(video, athlete)

	assert.Contains(t, prompt, "- Sport: basketball\n")
	assert.Contains(t, prompt, "- Video Type: practice\n")
	assert.Contains(t, prompt, "- Athlete Experience: 5 years\n")
	assert.Contains(t, prompt, "- Height: 182.5 cm\n")
	assert.Contains(t, prompt, "- Weight: Not specified kg\n")
	assert.Contains(t, prompt, `"ai_confidence": number (0-100)`)
	assert.Contains(t, prompt, "5. Injury prevention insights\n")
}

func TestBuildPrompt_UnknownAthleteDetails(t *testing.T) {
	zero := 0.0
	prompt := BuildPrompt(&models.Video{SportType: "tennis", VideoType: "match"}, &models.Athlete{WeightKG: &zero})

	assert.Contains(t, prompt, "- Athlete Experience: 0 years\n")
	assert.Contains(t, prompt, "- Height: Not specified cm\n")
	assert.Contains(t, prompt, "- Weight: Not specified kg\n")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	years := 2
	video := &models.Video{SportType: "football", VideoType: "match"}
	athlete := &models.Athlete{ExperienceYears: &years}

	assert.Equal(t, BuildPrompt(video, athlete), BuildPrompt(video, athlete))
}
