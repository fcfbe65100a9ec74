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

type activityMemory struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	order      map[string]int64
	seq        int64
}

func NewActivityMemory() repositories.ActivityRepository {
	return &activityMemory{
		activities: make(map[string]*models.Activity),
		order:      make(map[string]int64),
	}
}

func (r *activityMemory) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trail []*models.Activity
	for _, activity := range r.activities {
		if activity.UserID == userID {
			clone := *activity
			trail = append(trail, &clone)
		}
	}

	r.sortNewestFirst(trail)
	if limit > 0 && limit < len(trail) {
		trail = trail[:limit]
	}
	return trail, nil
}

func (r *activityMemory) List(ctx context.Context, filters repositories.ActivityFilters) ([]*models.Activity, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Activity
	for _, activity := range r.activities {
		if filters.UserID != nil && activity.UserID != *filters.UserID {
			continue
		}
		if filters.Type != nil && activity.Type != *filters.Type {
			continue
		}
		if filters.DateFrom != nil && activity.CreatedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && activity.CreatedAt.After(*filters.DateTo) {
			continue
		}
		clone := *activity
		matched = append(matched, &clone)
	}

	r.sortNewestFirst(matched)
	total := int64(len(matched))
	return paginate(matched, filters.Limit, filters.Offset), total, nil
}

func (r *activityMemory) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *activity
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = time.Now()

	r.seq++
	r.order[stored.ID] = r.seq
	r.activities[stored.ID] = &stored

	clone := stored
	return &clone, nil
}

func (r *activityMemory) sortNewestFirst(trail []*models.Activity) {
	sort.Slice(trail, func(i, j int) bool {
		if trail[i].CreatedAt.Equal(trail[j].CreatedAt) {
			return r.order[trail[i].ID] > r.order[trail[j].ID]
		}
		return trail[i].CreatedAt.After(trail[j].CreatedAt)
	})
}
