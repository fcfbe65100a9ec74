package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityPostgreSQL(db *gorm.DB) repositories.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	var trail []*models.Activity
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&trail).Error; err != nil {
		return nil, handleDBError(err, "list activities by user")
	}
	return trail, nil
}

func (r *activityRepository) List(ctx context.Context, filters repositories.ActivityFilters) ([]*models.Activity, int64, error) {
	var trail []*models.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Activity{})
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count activities")
	}

	query = applyPagination(query.Order("created_at DESC"), filters.Limit, filters.Offset)
	if err := query.Find(&trail).Error; err != nil {
		return nil, 0, handleDBError(err, "list activities")
	}
	return trail, total, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	stored := *activity
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, handleDBError(err, "create activity")
	}
	return &stored, nil
}
