package models

import "time"

type InterviewType string

const (
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
	InterviewCaseStudy  InterviewType = "case_study"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewTechnical, InterviewBehavioral, InterviewCaseStudy:
		return true
	}
	return false
}

// InterviewSession records one submitted mock-interview response.
// Sessions are never mutated after creation.
type InterviewSession struct {
	ID       string        `json:"id" gorm:"primaryKey;size:255"`
	UserID   string        `json:"user_id" gorm:"not null;size:255;index"`
	Type     InterviewType `json:"type" gorm:"not null;size:20"`
	Feedback *string       `json:"feedback" gorm:"type:text"`
	Score    *int          `json:"score"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
