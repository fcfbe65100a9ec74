package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned by every repository when the requested entity
// does not exist. Callers use errors.Is to distinguish "absent" from a
// storage failure.
var ErrNotFound = errors.New("entity not found")

// Repository aggregates all entity repositories behind one interface.
// Two implementations exist: repositories/postgres and repositories/memory,
// selected once at process start.
type Repository interface {
	User() UserRepository
	Course() CourseRepository
	Chat() ChatRepository
	Skill() SkillRepository
	Activity() ActivityRepository
	Interview() InterviewRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}
