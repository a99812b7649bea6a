package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the personal details shared by athletes and coaches
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	FullName  string    `json:"full_name" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates an ID if none was supplied
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// Athlete is read-only input to the pipelines
type Athlete struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileID string `json:"profile_id" gorm:"size:36;index"`
	// The JSON name matches PostgREST's embedded-resource key for select=*,profiles(*)
	Profile *Profile `json:"profiles,omitempty" gorm:"foreignKey:ProfileID"`

	PrimarySport      string   `json:"primary_sport" gorm:"not null;size:50"`
	ExperienceYears   *int     `json:"experience_years"`
	HeightCM          *float64 `json:"height_cm"`
	WeightKG          *float64 `json:"weight_kg"`
	PreferredPosition *string  `json:"preferred_position" gorm:"size:100"`
	CoachID           *string  `json:"coach_id" gorm:"size:36;index"`
}

// BeforeCreate generates an ID if none was supplied
func (a *Athlete) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Athlete model
func (Athlete) TableName() string {
	return "athletes"
}

// Experience returns years of experience, 0 when unknown
func (a *Athlete) Experience() int {
	if a.ExperienceYears == nil || *a.ExperienceYears < 0 {
		return 0
	}
	return *a.ExperienceYears
}

// FullName returns the profile name, empty when the profile was not loaded
func (a *Athlete) FullName() string {
	if a.Profile == nil {
		return ""
	}
	return a.Profile.FullName
}
