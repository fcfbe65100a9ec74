package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

// resumeService and recommendationService are pass-throughs to the AI
// gateway; validation is the only logic they own.

type resumeService struct {
	gateway   *ai.Gateway
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResumeService(gateway *ai.Gateway, logger *slog.Logger, v *validator.Validator) ResumeService {
	return &resumeService{gateway: gateway, logger: logger, validator: v}
}

func (s *resumeService) Analyze(ctx context.Context, req *validator.ResumeAnalyzeRequest) (*ai.ResumeAnalysis, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	analysis := s.gateway.AnalyzeResume(ctx, req.Resume, req.JobDescription)
	return &analysis, nil
}

func (s *resumeService) CoverLetter(ctx context.Context, req *validator.CoverLetterRequest) (string, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return "", fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	return s.gateway.CoverLetter(ctx, req.Resume, req.JobDescription), nil
}

func (s *resumeService) Roast(ctx context.Context, req *validator.ResumeRoastRequest) (string, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return "", fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	return s.gateway.RoastResume(ctx, req.Resume), nil
}

type recommendationService struct {
	repo      repositories.Repository
	gateway   *ai.Gateway
	logger    *slog.Logger
	validator *validator.Validator
}

func NewRecommendationService(repo repositories.Repository, gateway *ai.Gateway, logger *slog.Logger, v *validator.Validator) RecommendationService {
	return &recommendationService{repo: repo, gateway: gateway, logger: logger, validator: v}
}

func (s *recommendationService) Recommend(ctx context.Context, req *validator.RecommendationsRequest) ([]ai.CourseSuggestion, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	return s.gateway.RecommendCourses(ctx, req.Skills, req.Interests), nil
}
