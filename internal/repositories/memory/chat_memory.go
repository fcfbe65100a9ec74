package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type chatMemory struct {
	mu       sync.RWMutex
	messages map[string]*models.ChatMessage
	// order breaks creation-time ties so bursts written within the clock's
	// resolution still read back in send order.
	order map[string]int64
	seq   int64
}

func NewChatMemory() repositories.ChatRepository {
	return &chatMemory{
		messages: make(map[string]*models.ChatMessage),
		order:    make(map[string]int64),
	}
}

func (r *chatMemory) ListByUser(ctx context.Context, userID, sessionID string) ([]*models.ChatMessage, error) {
	if sessionID == "" {
		sessionID = models.DefaultChatSession
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var history []*models.ChatMessage
	for _, msg := range r.messages {
		if msg.UserID == userID && msg.SessionID == sessionID {
			clone := *msg
			history = append(history, &clone)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		if history[i].CreatedAt.Equal(history[j].CreatedAt) {
			return r.order[history[i].ID] < r.order[history[j].ID]
		}
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
	return history, nil
}

func (r *chatMemory) Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *msg
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.SessionID == "" {
		stored.SessionID = models.DefaultChatSession
	}
	stored.CreatedAt = time.Now()

	r.seq++
	r.order[stored.ID] = r.seq
	r.messages[stored.ID] = &stored

	clone := stored
	return &clone, nil
}
