package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type skillService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSkillService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) SkillService {
	return &skillService{repo: repo, logger: logger, validator: v}
}

func (s *skillService) ListByUser(ctx context.Context, userID string) ([]*models.SkillProgress, error) {
	progress, err := s.repo.Skill().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return progress, nil
}

func (s *skillService) Upsert(ctx context.Context, req *validator.SkillUpsertRequest) (*models.SkillProgress, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve skill user: %w", err)
	}

	record, err := s.repo.Skill().Upsert(ctx, req.UserID, req.SkillName, req.Progress)
	if err != nil {
		return nil, fmt.Errorf("upsert skill progress: %w", err)
	}
	return record, nil
}
