package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is one AI scorecard for a video. Rows are insert-only.
type Assessment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	VideoID   string    `json:"video_id" gorm:"not null;size:36;index"`
	AthleteID string    `json:"athlete_id" gorm:"not null;size:36;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Scores are 0-100
	OverallScore     float64 `json:"overall_score" gorm:"not null"`
	TechniqueScore   float64 `json:"technique_score"`
	SpeedScore       float64 `json:"speed_score"`
	PowerScore       float64 `json:"power_score"`
	EnduranceScore   float64 `json:"endurance_score"`
	FlexibilityScore float64 `json:"flexibility_score"`

	Strengths        datatypes.JSONSlice[string] `json:"strengths"`
	Weaknesses       datatypes.JSONSlice[string] `json:"weaknesses"`
	Recommendations  datatypes.JSONSlice[string] `json:"recommendations"`
	DetailedFeedback string                      `json:"detailed_feedback" gorm:"type:text"`
	AIConfidence     float64                     `json:"ai_confidence"`

	// AnalysisData is the structured result exactly as extracted (or the fallback)
	AnalysisData datatypes.JSON `json:"analysis_data"`
}

// BeforeCreate generates an ID if none was supplied
func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Assessment model
func (Assessment) TableName() string {
	return "assessments"
}
