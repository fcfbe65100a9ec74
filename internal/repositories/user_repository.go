package repositories

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/models"
)

// UserFilters defines filters for admin user queries
type UserFilters struct {
	Query    string           // Search query for name or email
	Role     *models.UserRole // Filter by role
	IsActive *bool            // Filter by active flag
	Limit    int              // Page size
	Offset   int              // Offset for pagination
}

// UserRepository defines user storage operations. The user id is the
// identity-provider subject, so Create never generates one.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create stores the user and returns the stored entity with defaults
	// applied (role "student", counters 0, active true).
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Update applies the non-nil fields of upd and returns the result.
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)

	// List is used by the admin back-office.
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)

	// SetActive toggles the soft-management flag.
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
}
