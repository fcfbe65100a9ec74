package repositories

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/models"
)

// SearchResultCap bounds free-text course search results.
const SearchResultCap = 10

type CourseFilters struct {
	Category   *string
	Difficulty *models.DifficultyLevel
	Limit      int
	Offset     int
}

type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context, filters CourseFilters) ([]*models.Course, int64, error)

	// ListRecommended returns the catalog's recommended courses for a user.
	ListRecommended(ctx context.Context, userID string) ([]*models.Course, error)

	// Search performs a case-insensitive substring match over title,
	// description and category, capped at SearchResultCap results.
	Search(ctx context.Context, query string) ([]*models.Course, error)

	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) (*models.Course, error)

	// Seed loads the initial catalog; it is a no-op when courses exist.
	Seed(ctx context.Context) error
}
