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

type skillKey struct {
	userID    string
	skillName string
}

type skillMemory struct {
	mu     sync.Mutex
	skills map[skillKey]*models.SkillProgress
}

func NewSkillMemory() repositories.SkillRepository {
	return &skillMemory{skills: make(map[skillKey]*models.SkillProgress)}
}

func (r *skillMemory) ListByUser(ctx context.Context, userID string) ([]*models.SkillProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var progress []*models.SkillProgress
	for key, record := range r.skills {
		if key.userID == userID {
			clone := *record
			progress = append(progress, &clone)
		}
	}

	sort.Slice(progress, func(i, j int) bool {
		return progress[i].SkillName < progress[j].SkillName
	})
	return progress, nil
}

// Upsert keys the map by (user, skill), so converging on one record per
// pair holds under concurrent writers as well as sequential ones.
func (r *skillMemory) Upsert(ctx context.Context, userID, skillName string, progress int) (*models.SkillProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := skillKey{userID: userID, skillName: skillName}
	record, ok := r.skills[key]
	if !ok {
		record = &models.SkillProgress{
			ID:        uuid.New().String(),
			UserID:    userID,
			SkillName: skillName,
		}
		r.skills[key] = record
	}

	record.Progress = clampProgress(progress)
	record.UpdatedAt = time.Now()

	clone := *record
	return &clone, nil
}
