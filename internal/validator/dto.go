package validator

import "github.com/skillsage/skillsage-service/internal/models"

// UserCreateRequest bootstraps a user on first login. ID and email come
// from the verified token when omitted.
type UserCreateRequest struct {
	Email     string          `json:"email" validate:"omitempty,email"`
	FullName  string          `json:"name" validate:"omitempty,max=100"`
	AvatarURL *string         `json:"avatar_url" validate:"omitempty,max=500"`
	Role      models.UserRole `json:"role" validate:"omitempty,user_role"`
}

// UserUpdateRequest carries a partial profile update.
type UserUpdateRequest struct {
	FullName        *string          `json:"full_name" validate:"omitempty,max=100"`
	AvatarURL       *string          `json:"avatar_url" validate:"omitempty,max=500"`
	Role            *models.UserRole `json:"role" validate:"omitempty,user_role"`
	Skills          []string         `json:"skills" validate:"omitempty,dive,min=1,max=100"`
	Credits         *int             `json:"credits" validate:"omitempty,min=0"`
	InternshipHours *int             `json:"internship_hours" validate:"omitempty,min=0"`
	Certificates    *int             `json:"certificates" validate:"omitempty,min=0"`
}

type CourseCreateRequest struct {
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description" validate:"omitempty,max=5000"`
	ImageURL    string                 `json:"image_url" validate:"omitempty,max=500"`
	Difficulty  models.DifficultyLevel `json:"difficulty" validate:"required,difficulty_level"`
	Duration    string                 `json:"duration" validate:"omitempty,max=50"`
	Rating      int                    `json:"rating" validate:"omitempty,min=0,max=50"`
	Category    string                 `json:"category" validate:"omitempty,max=100"`
	Recommended bool                   `json:"recommended"`
}

type ChatSendRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Content   string `json:"content" validate:"required,min=1,max=4000"`
	SessionID string `json:"session_id" validate:"omitempty,max=255"`
}

type SkillUpsertRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	SkillName string `json:"skill_name" validate:"required,min=1,max=100"`
	Progress  int    `json:"progress" validate:"min=0,max=100"`
}

type ActivityCreateRequest struct {
	UserID      string              `json:"user_id" validate:"required"`
	Type        models.ActivityType `json:"type" validate:"required,activity_type"`
	Description string              `json:"description" validate:"required,max=500"`
}

type InterviewQuestionRequest struct {
	Type models.InterviewType `json:"type" validate:"required,interview_type"`
}

type InterviewAnalyzeRequest struct {
	UserID   string               `json:"user_id" validate:"required"`
	Type     models.InterviewType `json:"type" validate:"required,interview_type"`
	Response string               `json:"response" validate:"required,min=1,max=10000"`
}

type RecommendationsRequest struct {
	Skills    []string `json:"skills" validate:"omitempty,dive,max=100"`
	Interests []string `json:"interests" validate:"omitempty,dive,max=100"`
}

type ResumeAnalyzeRequest struct {
	Resume         string `json:"resume" validate:"required,min=1,max=20000"`
	JobDescription string `json:"job_description" validate:"required,min=1,max=20000"`
}

type CoverLetterRequest struct {
	Resume         string `json:"resume" validate:"required,min=1,max=20000"`
	JobDescription string `json:"job_description" validate:"required,min=1,max=20000"`
}

type ResumeRoastRequest struct {
	Resume string `json:"resume" validate:"required,min=1,max=20000"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
