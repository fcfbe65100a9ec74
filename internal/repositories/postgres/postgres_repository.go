package postgres

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/cache"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	user      repositories.UserRepository
	course    repositories.CourseRepository
	chat      repositories.ChatRepository
	skill     repositories.SkillRepository
	activity  repositories.ActivityRepository
	interview repositories.InterviewRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewRepository creates a repository manager with all sub-repositories.
// RedisClient may be nil; the user repository then runs uncached.
func NewRepository(config RepositoryConfig) repositories.Repository {
	userCache := cache.NewCacheHelper(config.RedisClient, "user", cache.UserCacheTTL)

	return &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,
		user:        NewUserPostgreSQL(config.DB, userCache),
		course:      NewCoursePostgreSQL(config.DB),
		chat:        NewChatPostgreSQL(config.DB),
		skill:       NewSkillPostgreSQL(config.DB),
		activity:    NewActivityPostgreSQL(config.DB),
		interview:   NewInterviewPostgreSQL(config.DB),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository           { return r.user }
func (r *PostgreSQLRepository) Course() repositories.CourseRepository       { return r.course }
func (r *PostgreSQLRepository) Chat() repositories.ChatRepository           { return r.chat }
func (r *PostgreSQLRepository) Skill() repositories.SkillRepository         { return r.skill }
func (r *PostgreSQLRepository) Activity() repositories.ActivityRepository   { return r.activity }
func (r *PostgreSQLRepository) Interview() repositories.InterviewRepository { return r.interview }

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
