package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCourseService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) CourseService {
	return &courseService{repo: repo, logger: logger, validator: v}
}

func (s *courseService) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	courses, total, err := s.repo.Course().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	return courses, total, nil
}

func (s *courseService) Recommended(ctx context.Context, userID string) ([]*models.Course, error) {
	courses, err := s.repo.Course().ListRecommended(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recommended courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) Search(ctx context.Context, query string) ([]*models.Course, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidationFailed)
	}

	courses, err := s.repo.Course().Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) Create(ctx context.Context, req *validator.CourseCreateRequest) (*models.Course, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Rating:      req.Rating,
		Category:    req.Category,
		Recommended: req.Recommended,
	}

	created, err := s.repo.Course().Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.logger.InfoContext(ctx, "course created", "course_id", created.ID, "title", created.Title)
	return created, nil
}

func (s *courseService) Update(ctx context.Context, id string, req *validator.CourseCreateRequest) (*models.Course, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	course := &models.Course{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Rating:      req.Rating,
		Category:    req.Category,
		Recommended: req.Recommended,
	}

	updated, err := s.repo.Course().Update(ctx, course)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("update course: %w", err)
	}
	return updated, nil
}
