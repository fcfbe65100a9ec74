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

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) UserService {
	return &userService{repo: repo, logger: logger, validator: v}
}

// Bootstrap is the first-login handler's core: check-then-create keyed by
// the verified subject id. A repeat call finds the existing record and
// returns it untouched, which makes first login idempotent.
func (s *userService) Bootstrap(ctx context.Context, req BootstrapRequest) (*models.User, bool, error) {
	existing, err := s.repo.User().GetByID(ctx, req.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("bootstrap lookup: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, false, fmt.Errorf("%w: unknown role %q", ErrValidationFailed, role)
	}

	user := &models.User{
		ID:        req.ID,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Role:      role,
	}

	created, err := s.repo.User().Create(ctx, user)
	if err != nil {
		// A concurrent first login may have won the race; fall back to
		// the stored record.
		if stored, getErr := s.repo.User().GetByID(ctx, req.ID); getErr == nil {
			return stored, false, nil
		}
		return nil, false, fmt.Errorf("bootstrap create: %w", err)
	}

	s.logger.InfoContext(ctx, "bootstrapped new user",
		"user_id", created.ID,
		"role", created.Role)
	return created, true, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, req *validator.UserUpdateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidationFailed, *req.Role)
	}

	upd := models.UserUpdate{
		FullName:        req.FullName,
		AvatarURL:       req.AvatarURL,
		Role:            req.Role,
		Skills:          req.Skills,
		Credits:         req.Credits,
		InternshipHours: req.InternshipHours,
		Certificates:    req.Certificates,
	}

	user, err := s.repo.User().Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *userService) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	user, err := s.repo.User().SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("set user active: %w", err)
	}

	s.logger.InfoContext(ctx, "user active flag changed",
		"user_id", id,
		"is_active", active)
	return user, nil
}
