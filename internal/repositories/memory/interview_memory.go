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

type interviewMemory struct {
	mu       sync.RWMutex
	sessions map[string]*models.InterviewSession
}

func NewInterviewMemory() repositories.InterviewRepository {
	return &interviewMemory{sessions: make(map[string]*models.InterviewSession)}
}

func (r *interviewMemory) ListByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []*models.InterviewSession
	for _, session := range r.sessions {
		if session.UserID == userID {
			clone := *session
			sessions = append(sessions, &clone)
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (r *interviewMemory) Create(ctx context.Context, session *models.InterviewSession) (*models.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = time.Now()

	r.sessions[stored.ID] = &stored
	clone := stored
	return &clone, nil
}
