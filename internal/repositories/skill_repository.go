package repositories

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/models"
)

// SkillRepository maintains at most one progress row per (user, skill).
type SkillRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.SkillProgress, error)

	// Upsert creates or updates the (userID, skillName) record atomically
	// and returns the stored row. Progress is clamped to [0, 100].
	Upsert(ctx context.Context, userID, skillName string, progress int) (*models.SkillProgress, error)
}
