package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type chatRepository struct {
	db *gorm.DB
}

func NewChatPostgreSQL(db *gorm.DB) repositories.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) ListByUser(ctx context.Context, userID, sessionID string) ([]*models.ChatMessage, error) {
	if sessionID == "" {
		sessionID = models.DefaultChatSession
	}

	var messages []*models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, handleDBError(err, "list chat messages")
	}
	return messages, nil
}

func (r *chatRepository) Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	stored := *msg
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.SessionID == "" {
		stored.SessionID = models.DefaultChatSession
	}

	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, handleDBError(err, "create chat message")
	}
	return &stored, nil
}
