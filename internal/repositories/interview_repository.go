package repositories

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/models"
)

// InterviewRepository stores completed mock-interview sessions.
// Sessions are created once and never mutated.
type InterviewRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error)
	Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error)
}
