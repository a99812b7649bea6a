package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is an uploaded training clip. Only IsAnalyzed is written by this service.
type Video struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	AthleteID string    `json:"athlete_id" gorm:"not null;size:36;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title     string `json:"title" gorm:"size:255"`
	SportType string `json:"sport_type" gorm:"not null;size:50"`
	VideoType string `json:"video_type" gorm:"not null;size:50"` // practice, match, ...
	VideoURL  string `json:"video_url" gorm:"size:500"`

	IsAnalyzed bool `json:"is_analyzed" gorm:"not null;default:false"`
}

// BeforeCreate generates an ID if none was supplied
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}
