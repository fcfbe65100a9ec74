package memory

import (
	"context"

	"github.com/skillsage/skillsage-service/internal/repositories"
)

// MemoryRepository implements repositories.Repository with one mutex-guarded
// map per entity. It trades durability for zero setup: state lives only for
// the lifetime of the process.
type MemoryRepository struct {
	user      repositories.UserRepository
	course    repositories.CourseRepository
	chat      repositories.ChatRepository
	skill     repositories.SkillRepository
	activity  repositories.ActivityRepository
	interview repositories.InterviewRepository
}

// NewRepository creates a fully wired in-memory repository manager.
func NewRepository() repositories.Repository {
	return &MemoryRepository{
		user:      NewUserMemory(),
		course:    NewCourseMemory(),
		chat:      NewChatMemory(),
		skill:     NewSkillMemory(),
		activity:  NewActivityMemory(),
		interview: NewInterviewMemory(),
	}
}

func (r *MemoryRepository) User() repositories.UserRepository           { return r.user }
func (r *MemoryRepository) Course() repositories.CourseRepository       { return r.course }
func (r *MemoryRepository) Chat() repositories.ChatRepository           { return r.chat }
func (r *MemoryRepository) Skill() repositories.SkillRepository         { return r.skill }
func (r *MemoryRepository) Activity() repositories.ActivityRepository   { return r.activity }
func (r *MemoryRepository) Interview() repositories.InterviewRepository { return r.interview }

func (r *MemoryRepository) Ping(ctx context.Context) error { return nil }

func (r *MemoryRepository) Close() error { return nil }
