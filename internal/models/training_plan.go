package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingPlan is a generated multi-week program. Rows are insert-only and
// earlier plans are never deactivated, so an athlete can hold several active plans.
type TrainingPlan struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	AthleteID string    `json:"athlete_id" gorm:"not null;size:36;index"`
	CoachID   *string   `json:"coach_id" gorm:"size:36"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	SportType       string                      `json:"sport_type" gorm:"not null;size:50"`
	Title           string                      `json:"title" gorm:"not null;size:255"`
	Description     string                      `json:"description" gorm:"type:text"`
	DurationWeeks   int                         `json:"duration_weeks"`
	DifficultyLevel int                         `json:"difficulty_level"` // 1-5
	Goals           datatypes.JSONSlice[string] `json:"goals"`
	IsActive        bool                        `json:"is_active" gorm:"index"`

	// PlanData is the full weekly schedule
	PlanData datatypes.JSON `json:"plan_data" gorm:"not null"`
}

// BeforeCreate generates an ID if none was supplied
func (p *TrainingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the TrainingPlan model
func (TrainingPlan) TableName() string {
	return "training_plans"
}
