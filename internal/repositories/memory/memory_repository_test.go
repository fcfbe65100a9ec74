package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

func TestUserCreateAppliesDefaults(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.User().Create(ctx, &models.User{
		ID:       "user-1",
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, created.Role)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.Credits)
	assert.Equal(t, 0, created.InternshipHours)
	assert.Equal(t, 0, created.Certificates)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := repo.User().GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, created.Role, stored.Role)
}

func TestUserGetByIDNotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.User().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserUpdatePartial(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.User().Create(ctx, &models.User{
		ID:       "user-1",
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)

	name := "Ada L."
	credits := 40
	updated, err := repo.User().Update(ctx, "user-1", models.UserUpdate{
		FullName: &name,
		Credits:  &credits,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", updated.FullName)
	assert.Equal(t, 40, updated.Credits)
	// Untouched fields survive.
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, models.RoleStudent, updated.Role)

	_, err = repo.User().Update(ctx, "missing", models.UserUpdate{FullName: &name})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserListFilters(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		role := models.RoleStudent
		if i == 0 {
			role = models.RoleAdmin
		}
		_, err := repo.User().Create(ctx, &models.User{
			ID:       fmt.Sprintf("user-%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			FullName: fmt.Sprintf("User %d", i),
			Role:     role,
		})
		require.NoError(t, err)
	}

	admin := models.RoleAdmin
	users, total, err := repo.User().List(ctx, repositories.UserFilters{Role: &admin, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "user-0", users[0].ID)

	users, total, err = repo.User().List(ctx, repositories.UserFilters{Query: "user3", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "user-3", users[0].ID)
}

func TestSkillUpsertConverges(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.Skill().Upsert(ctx, "user-1", "Go", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Progress)

	second, err := repo.Skill().Upsert(ctx, "user-1", "Go", 55)
	require.NoError(t, err)
	assert.Equal(t, 55, second.Progress)
	assert.Equal(t, first.ID, second.ID, "repeat upsert must update the same row")

	skills, err := repo.Skill().ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, skills, 1)
}

func TestSkillUpsertClampsProgress(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	over, err := repo.Skill().Upsert(ctx, "user-1", "Go", 150)
	require.NoError(t, err)
	assert.Equal(t, 100, over.Progress)

	under, err := repo.Skill().Upsert(ctx, "user-1", "SQL", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, under.Progress)
}

func TestSkillUpsertConcurrent(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(progress int) {
			defer wg.Done()
			_, err := repo.Skill().Upsert(ctx, "user-1", "Go", progress)
			assert.NoError(t, err)
		}(i * 2)
	}
	wg.Wait()

	skills, err := repo.Skill().ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, skills, 1, "concurrent upserts of the same pair must converge to one row")
}

func TestCourseSearchCapped(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := repo.Course().Create(ctx, &models.Course{
			Title:      fmt.Sprintf("Go Workshop %d", i),
			Difficulty: models.DifficultyBeginner,
		})
		require.NoError(t, err)
	}

	results, err := repo.Course().Search(ctx, "go workshop")
	require.NoError(t, err)
	assert.Len(t, results, repositories.SearchResultCap)

	results, err = repo.Course().Search(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCourseSeedIdempotent(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Course().Seed(ctx))
	_, total, err := repo.Course().List(ctx, repositories.CourseFilters{Limit: 100})
	require.NoError(t, err)
	seeded := total

	require.NoError(t, repo.Course().Seed(ctx))
	_, total, err = repo.Course().List(ctx, repositories.CourseFilters{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, seeded, total, "reseeding must not duplicate the catalog")
}

func TestActivitiesNewestFirst(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	types := []models.ActivityType{
		models.ActivityCourseCompleted,
		models.ActivityChatSession,
		models.ActivityResumeAnalyzed,
	}
	for i, at := range types {
		_, err := repo.Activity().Create(ctx, &models.Activity{
			UserID:      "user-1",
			Type:        at,
			Description: fmt.Sprintf("entry %d", i),
		})
		require.NoError(t, err)
	}

	activities, err := repo.Activity().ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "entry 2", activities[0].Description)
	assert.Equal(t, "entry 0", activities[2].Description)

	limited, err := repo.Activity().ListByUser(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestActivityListFilters(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Activity().Create(ctx, &models.Activity{
		UserID: "user-1", Type: models.ActivityCourseCompleted, Description: "a",
	})
	require.NoError(t, err)
	_, err = repo.Activity().Create(ctx, &models.Activity{
		UserID: "user-2", Type: models.ActivityChatSession, Description: "b",
	})
	require.NoError(t, err)

	userID := "user-2"
	activities, total, err := repo.Activity().List(ctx, repositories.ActivityFilters{UserID: &userID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, activities, 1)
	assert.Equal(t, "b", activities[0].Description)

	future := time.Now().Add(time.Hour)
	activities, total, err = repo.Activity().List(ctx, repositories.ActivityFilters{DateFrom: &future, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, activities)
}

func TestChatHistoryOrderedAndScoped(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Chat().Create(ctx, &models.ChatMessage{
			UserID:    "user-1",
			Content:   fmt.Sprintf("message %d", i),
			SessionID: models.DefaultChatSession,
			IsAI:      i%2 == 1,
		})
		require.NoError(t, err)
	}
	_, err := repo.Chat().Create(ctx, &models.ChatMessage{
		UserID:    "user-1",
		Content:   "other session",
		SessionID: "interview-prep",
	})
	require.NoError(t, err)

	history, err := repo.Chat().ListByUser(ctx, "user-1", models.DefaultChatSession)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "message 0", history[0].Content)
	assert.Equal(t, "message 2", history[2].Content)

	other, err := repo.Chat().ListByUser(ctx, "user-1", "interview-prep")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestInterviewSessionsRoundTrip(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	score := 82
	feedback := "good structure"
	created, err := repo.Interview().Create(ctx, &models.InterviewSession{
		UserID:   "user-1",
		Type:     models.InterviewTechnical,
		Score:    &score,
		Feedback: &feedback,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	sessions, err := repo.Interview().ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].Score)
	assert.Equal(t, 82, *sessions[0].Score)
}
