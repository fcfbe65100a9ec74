package repositories

import (
	"context"
	"time"

	"github.com/skillsage/skillsage-service/internal/models"
)

type ActivityFilters struct {
	UserID   *string
	Type     *models.ActivityType
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// ActivityRepository stores the append-only audit trail.
type ActivityRepository interface {
	// ListByUser returns the user's activities newest-first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Activity, error)

	// List is used by the admin back-office, newest-first.
	List(ctx context.Context, filters ActivityFilters) ([]*models.Activity, int64, error)

	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
}
