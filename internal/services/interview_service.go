package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type interviewService struct {
	repo      repositories.Repository
	gateway   *ai.Gateway
	logger    *slog.Logger
	validator *validator.Validator
}

func NewInterviewService(repo repositories.Repository, gateway *ai.Gateway, logger *slog.Logger, v *validator.Validator) InterviewService {
	return &interviewService{repo: repo, gateway: gateway, logger: logger, validator: v}
}

func (s *interviewService) ListByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	sessions, err := s.repo.Interview().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interview sessions: %w", err)
	}
	return sessions, nil
}

func (s *interviewService) Question(ctx context.Context, req *validator.InterviewQuestionRequest) (string, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return "", fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	return s.gateway.InterviewQuestion(ctx, req.Type), nil
}

// Analyze scores the submitted response and persists one immutable
// session per submission.
func (s *interviewService) Analyze(ctx context.Context, req *validator.InterviewAnalyzeRequest) (*InterviewAnalyzeResult, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve interview user: %w", err)
	}

	analysis := s.gateway.AnalyzeInterview(ctx, req.Type, req.Response)

	score := analysis.Score
	feedback := analysis.Feedback
	session, err := s.repo.Interview().Create(ctx, &models.InterviewSession{
		UserID:   req.UserID,
		Type:     req.Type,
		Feedback: &feedback,
		Score:    &score,
	})
	if err != nil {
		return nil, fmt.Errorf("store interview session: %w", err)
	}

	return &InterviewAnalyzeResult{Session: session, Analysis: analysis}, nil
}
