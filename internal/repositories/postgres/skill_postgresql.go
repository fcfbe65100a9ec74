package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type skillRepository struct {
	db *gorm.DB
}

func NewSkillPostgreSQL(db *gorm.DB) repositories.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListByUser(ctx context.Context, userID string) ([]*models.SkillProgress, error) {
	var progress []*models.SkillProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_name ASC").
		Find(&progress).Error; err != nil {
		return nil, handleDBError(err, "list skill progress")
	}
	return progress, nil
}

// Upsert uses a single INSERT ... ON CONFLICT on the (user_id, skill_name)
// unique index, so concurrent writers for the same pair cannot produce
// duplicate rows.
func (r *skillRepository) Upsert(ctx context.Context, userID, skillName string, progress int) (*models.SkillProgress, error) {
	record := models.SkillProgress{
		ID:        uuid.New().String(),
		UserID:    userID,
		SkillName: skillName,
		Progress:  clampProgress(progress),
		UpdatedAt: time.Now(),
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return nil, handleDBError(err, "upsert skill progress")
	}

	var stored models.SkillProgress
	if err := r.db.WithContext(ctx).
		First(&stored, "user_id = ? AND skill_name = ?", userID, skillName).Error; err != nil {
		return nil, handleDBError(err, "reload skill progress")
	}
	return &stored, nil
}
