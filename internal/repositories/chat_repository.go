package repositories

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/models"
)

// ChatRepository stores the append-only chat history. Messages are
// ordered by creation time within a (user, session) pair.
type ChatRepository interface {
	ListByUser(ctx context.Context, userID, sessionID string) ([]*models.ChatMessage, error)
	Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error)
}
