package services

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

// BootstrapRequest carries the identity-provider profile used to create a
// user on first login.
type BootstrapRequest struct {
	ID        string
	Email     string
	FullName  string
	AvatarURL *string
	Role      models.UserRole
}

// UserService owns user lifecycle, including bootstrap-on-first-login.
type UserService interface {
	// Bootstrap creates the user if absent and reports whether it was
	// created. Calling it twice with the same id is a no-op lookup.
	Bootstrap(ctx context.Context, req BootstrapRequest) (*models.User, bool, error)

	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, req *validator.UserUpdateRequest) (*models.User, error)

	// Admin back-office
	List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error)
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
}

type CourseService interface {
	List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error)
	Recommended(ctx context.Context, userID string) ([]*models.Course, error)
	Search(ctx context.Context, query string) ([]*models.Course, error)

	// Admin content management
	Create(ctx context.Context, req *validator.CourseCreateRequest) (*models.Course, error)
	Update(ctx context.Context, id string, req *validator.CourseCreateRequest) (*models.Course, error)
}

// ChatSendResult returns both halves of a mentor exchange.
type ChatSendResult struct {
	UserMessage *models.ChatMessage `json:"user_message"`
	AIMessage   *models.ChatMessage `json:"ai_message"`
}

type ChatService interface {
	History(ctx context.Context, userID, sessionID string) ([]*models.ChatMessage, error)
	Send(ctx context.Context, req *validator.ChatSendRequest) (*ChatSendResult, error)
}

type SkillService interface {
	ListByUser(ctx context.Context, userID string) ([]*models.SkillProgress, error)
	Upsert(ctx context.Context, req *validator.SkillUpsertRequest) (*models.SkillProgress, error)
}

type ActivityService interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error)
	Record(ctx context.Context, req *validator.ActivityCreateRequest) (*models.Activity, error)

	// Admin back-office
	List(ctx context.Context, filters repositories.ActivityFilters) ([]*models.Activity, int64, error)
	ExportXLSX(ctx context.Context, filters repositories.ActivityFilters) ([]byte, error)
}

// InterviewAnalyzeResult pairs the persisted session with the analysis
// returned to the client.
type InterviewAnalyzeResult struct {
	Session  *models.InterviewSession `json:"session"`
	Analysis ai.InterviewAnalysis     `json:"analysis"`
}

type InterviewService interface {
	ListByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error)
	Question(ctx context.Context, req *validator.InterviewQuestionRequest) (string, error)
	Analyze(ctx context.Context, req *validator.InterviewAnalyzeRequest) (*InterviewAnalyzeResult, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, req *validator.RecommendationsRequest) ([]ai.CourseSuggestion, error)
}

type ResumeService interface {
	Analyze(ctx context.Context, req *validator.ResumeAnalyzeRequest) (*ai.ResumeAnalysis, error)
	CoverLetter(ctx context.Context, req *validator.CoverLetterRequest) (string, error)
	Roast(ctx context.Context, req *validator.ResumeRoastRequest) (string, error)
}

// ServiceManager aggregates all services behind one constructor-injected
// dependency for the handlers.
type ServiceManager interface {
	User() UserService
	Course() CourseService
	Chat() ChatService
	Skill() SkillService
	Activity() ActivityService
	Interview() InterviewService
	Recommendation() RecommendationService
	Resume() ResumeService

	Shutdown(ctx context.Context) error
}
