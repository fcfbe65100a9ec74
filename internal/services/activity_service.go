package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/skillsage/skillsage-service/internal/events"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type activityService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewActivityService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) ActivityService {
	return &activityService{repo: repo, publisher: publisher, logger: logger, validator: v}
}

func (s *activityService) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	trail, err := s.repo.Activity().ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return trail, nil
}

// Record appends to the audit trail and publishes the activity to the
// event bus. Publish failures are logged, not surfaced: the stored row is
// the source of truth, the event stream is best-effort.
func (s *activityService) Record(ctx context.Context, req *validator.ActivityCreateRequest) (*models.Activity, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve activity user: %w", err)
	}

	activity, err := s.repo.Activity().Create(ctx, &models.Activity{
		UserID:      req.UserID,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	event := events.NewEvent("activity."+string(activity.Type), activity)
	if err := s.publisher.Publish(ctx, events.ActivityTopic, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish activity event",
			"error", err,
			"activity_id", activity.ID)
	}

	return activity, nil
}

func (s *activityService) List(ctx context.Context, filters repositories.ActivityFilters) ([]*models.Activity, int64, error) {
	trail, total, err := s.repo.Activity().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}
	return trail, total, nil
}

// ExportXLSX renders the filtered audit trail as a spreadsheet for the
// admin back-office.
func (s *activityService) ExportXLSX(ctx context.Context, filters repositories.ActivityFilters) ([]byte, error) {
	trail, _, err := s.repo.Activity().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("load activities for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Activities"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "User ID", "Type", "Description", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write export header: %w", err)
		}
	}

	for row, activity := range trail {
		values := []interface{}{
			activity.ID,
			activity.UserID,
			string(activity.Type),
			activity.Description,
			activity.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write export row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	return buf.Bytes(), nil
}
