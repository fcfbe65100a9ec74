package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewPostgreSQL(db *gorm.DB) repositories.InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) ListByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	var sessions []*models.InterviewSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, handleDBError(err, "list interview sessions")
	}
	return sessions, nil
}

func (r *interviewRepository) Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error) {
	stored := *session
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.Score != nil {
		clamped := clampProgress(*stored.Score)
		stored.Score = &clamped
	}
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, handleDBError(err, "create interview session")
	}
	return &stored, nil
}
