package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/repositories"
)

// handleDBError normalizes gorm errors: record-not-found maps to the
// repositories sentinel, everything else is wrapped with the operation.
func handleDBError(err error, operation string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", operation, repositories.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// applyPagination applies limit/offset to a query. A zero limit means
// "no limit".
func applyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

// clampProgress bounds a progress/score percentage to [0, 100].
func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
