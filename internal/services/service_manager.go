package services

import (
	"context"
	"log/slog"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/events"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

// serviceManager implements ServiceManager. All dependencies are injected
// once at boot; nothing is re-initialized mid-request.
type serviceManager struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	gateway   *ai.Gateway
	logger    *slog.Logger
	validator *validator.Validator

	userService           UserService
	courseService         CourseService
	chatService           ChatService
	skillService          SkillService
	activityService       ActivityService
	interviewService      InterviewService
	recommendationService RecommendationService
	resumeService         ResumeService
}

// NewServiceManager wires every service against the shared dependencies.
func NewServiceManager(
	repo repositories.Repository,
	publisher events.EventPublisher,
	gateway *ai.Gateway,
	logger *slog.Logger,
	v *validator.Validator,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		publisher: publisher,
		gateway:   gateway,
		logger:    logger,
		validator: v,

		userService:           NewUserService(repo, logger, v),
		courseService:         NewCourseService(repo, logger, v),
		chatService:           NewChatService(repo, gateway, logger, v),
		skillService:          NewSkillService(repo, logger, v),
		activityService:       NewActivityService(repo, publisher, logger, v),
		interviewService:      NewInterviewService(repo, gateway, logger, v),
		recommendationService: NewRecommendationService(repo, gateway, logger, v),
		resumeService:         NewResumeService(gateway, logger, v),
	}
}

func (m *serviceManager) User() UserService                     { return m.userService }
func (m *serviceManager) Course() CourseService                 { return m.courseService }
func (m *serviceManager) Chat() ChatService                     { return m.chatService }
func (m *serviceManager) Skill() SkillService                   { return m.skillService }
func (m *serviceManager) Activity() ActivityService             { return m.activityService }
func (m *serviceManager) Interview() InterviewService           { return m.interviewService }
func (m *serviceManager) Recommendation() RecommendationService { return m.recommendationService }
func (m *serviceManager) Resume() ResumeService                 { return m.resumeService }

func (m *serviceManager) Shutdown(ctx context.Context) error {
	return m.publisher.Close()
}
