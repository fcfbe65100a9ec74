package models

import "time"

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyAdvanced     DifficultyLevel = "Advanced"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID          string          `json:"id" gorm:"primaryKey;size:255"`
	Title       string          `json:"title" gorm:"not null;size:255"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"image_url" gorm:"size:500"`
	Difficulty  DifficultyLevel `json:"difficulty" gorm:"not null;size:20"`
	Duration    string          `json:"duration" gorm:"size:50"`

	// Rating is stored x10 so 4.5 stars persists as 45.
	Rating int `json:"rating" gorm:"not null;default:0"`

	Category    string `json:"category" gorm:"size:100;index"`
	Recommended bool   `json:"recommended" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
