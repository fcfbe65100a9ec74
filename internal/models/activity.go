package models

import "time"

type ActivityType string

const (
	ActivityCourseCompleted    ActivityType = "course_completed"
	ActivityCertificateEarned  ActivityType = "certificate_earned"
	ActivityChatSession        ActivityType = "chat_session"
	ActivityInterviewCompleted ActivityType = "interview_completed"
	ActivityResumeAnalyzed     ActivityType = "resume_analyzed"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCourseCompleted, ActivityCertificateEarned, ActivityChatSession,
		ActivityInterviewCompleted, ActivityResumeAnalyzed:
		return true
	}
	return false
}

// Activity is an append-only audit trail entry, read newest-first.
type Activity struct {
	ID          string       `json:"id" gorm:"primaryKey;size:255"`
	UserID      string       `json:"user_id" gorm:"not null;size:255;index"`
	Type        ActivityType `json:"type" gorm:"not null;size:50"`
	Description string       `json:"description" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Activity) TableName() string {
	return "activities"
}
