package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/config"
	"github.com/skillsage/skillsage-service/internal/events"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/repositories/memory"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/validator"
)

// newTestServer wires the full stack against the memory store with the
// development auth profile, so every request runs as the dev admin.
func newTestServer(t *testing.T) (*gin.Engine, repositories.Repository) {
	t.Helper()

	slogLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	repo := memory.NewRepository()
	require.NoError(t, repo.Course().Seed(t.Context()))

	publisher := events.NewMockEventPublisher(slogLogger)
	gateway := ai.NewGateway(ai.NewClient("", ""), slogLogger)
	sm := services.NewServiceManager(repo, publisher, gateway, slogLogger, validator.New())

	cfg := &config.Config{
		Environment: config.EnvDevelopment,
		Storage:     config.StorageMemory,
	}

	hm := NewHandlerManager(sm, repo, cfg, testUtilsLogger())
	router := gin.New()
	hm.SetupRoutes(router)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestBootstrapIdempotent(t *testing.T) {
	router, _ := newTestServer(t)

	first := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"email": "dev@example.com",
		"name":  "Dev Admin",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &user))
	assert.Equal(t, "dev-admin", user.ID)
	assert.True(t, user.IsActive)
	assert.Equal(t, 0, user.Credits)

	second := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"email": "changed@example.com",
	})
	require.Equal(t, http.StatusOK, second.Code)

	var repeat models.User
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &repeat))
	assert.Equal(t, "dev@example.com", repeat.Email, "repeat bootstrap returns the stored record")
}

func TestGetUserNotFoundBody(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/user/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestUpdateUserPartial(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	w := doJSON(t, router, http.MethodPatch, "/api/user/dev-admin", map[string]any{
		"full_name": "Renamed",
		"credits":   25,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Renamed", user.FullName)
	assert.Equal(t, 25, user.Credits)
	assert.Equal(t, "dev@example.com", user.Email)
}

func TestCourseEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("list returns seeded catalog", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/courses", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Courses []models.Course `json:"courses"`
			Total   int64           `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Courses)
		assert.Equal(t, int64(len(body.Courses)), body.Total)
	})

	t.Run("search requires query", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/courses/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("search matches seeded course", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/courses/search?q=python", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var results []models.Course
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		assert.NotEmpty(t, results)
		assert.LessOrEqual(t, len(results), repositories.SearchResultCap)
	})

	t.Run("recommended for user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/courses/recommended/dev-admin", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSkillUpsertFlow(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	first := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"user_id":    "dev-admin",
		"skill_name": "Go",
		"progress":   40,
	})
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/skills", map[string]any{
		"user_id":    "dev-admin",
		"skill_name": "Go",
		"progress":   80,
	})
	require.Equal(t, http.StatusOK, second.Code)

	list := doJSON(t, router, http.MethodGet, "/api/skills/dev-admin", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var skills []models.SkillProgress
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &skills))
	require.Len(t, skills, 1, "upsert by (user, skill) must not duplicate rows")
	assert.Equal(t, 80, skills[0].Progress)
}

func TestChatFlow(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	send := doJSON(t, router, http.MethodPost, "/api/chat", map[string]string{
		"user_id": "dev-admin",
		"content": "How do I get my first internship?",
	})
	require.Equal(t, http.StatusOK, send.Code)

	var result struct {
		UserMessage models.ChatMessage `json:"user_message"`
		AIMessage   models.ChatMessage `json:"ai_message"`
	}
	require.NoError(t, json.Unmarshal(send.Body.Bytes(), &result))
	assert.False(t, result.UserMessage.IsAI)
	assert.True(t, result.AIMessage.IsAI)
	assert.NotEmpty(t, result.AIMessage.Content)

	history := doJSON(t, router, http.MethodGet, "/api/chat/dev-admin", nil)
	require.Equal(t, http.StatusOK, history.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(history.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
}

func TestActivityFlow(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/activities", map[string]string{
			"user_id":     "dev-admin",
			"type":        "course_completed",
			"description": fmt.Sprintf("entry %d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	list := doJSON(t, router, http.MethodGet, "/api/activities/dev-admin", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var activities []models.Activity
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &activities))
	require.Len(t, activities, 3)
	assert.Equal(t, "entry 2", activities[0].Description, "activities must read newest-first")
}

func TestInterviewEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	question := doJSON(t, router, http.MethodPost, "/api/interview/question", map[string]string{
		"type": "technical",
	})
	require.Equal(t, http.StatusOK, question.Code)

	var qBody map[string]string
	require.NoError(t, json.Unmarshal(question.Body.Bytes(), &qBody))
	assert.NotEmpty(t, qBody["question"])

	analyze := doJSON(t, router, http.MethodPost, "/api/interview/analyze", map[string]string{
		"user_id":  "dev-admin",
		"type":     "technical",
		"response": "I would use consistent hashing.",
	})
	require.Equal(t, http.StatusOK, analyze.Code)

	sessions := doJSON(t, router, http.MethodGet, "/api/interviews/dev-admin", nil)
	require.Equal(t, http.StatusOK, sessions.Code)

	var stored []models.InterviewSession
	require.NoError(t, json.Unmarshal(sessions.Body.Bytes(), &stored))
	assert.Len(t, stored, 1)
}

func TestResumeAndRecommendationEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	analyze := doJSON(t, router, http.MethodPost, "/api/resume/analyze", map[string]string{
		"resume":          "Go developer, 2 years",
		"job_description": "Backend engineer",
	})
	require.Equal(t, http.StatusOK, analyze.Code)

	var analysis ai.ResumeAnalysis
	require.NoError(t, json.Unmarshal(analyze.Body.Bytes(), &analysis))
	assert.GreaterOrEqual(t, analysis.MatchScore, 0)
	assert.LessOrEqual(t, analysis.MatchScore, 100)

	letter := doJSON(t, router, http.MethodPost, "/api/resume/cover-letter", map[string]string{
		"resume":          "Go developer",
		"job_description": "Backend engineer",
	})
	require.Equal(t, http.StatusOK, letter.Code)

	roast := doJSON(t, router, http.MethodPost, "/api/resume/roast", map[string]string{
		"resume": "Go developer",
	})
	require.Equal(t, http.StatusOK, roast.Code)

	recs := doJSON(t, router, http.MethodPost, "/api/recommendations", map[string]any{
		"skills":    []string{"go"},
		"interests": []string{"backend"},
	})
	require.Equal(t, http.StatusOK, recs.Code)

	var suggestions []ai.CourseSuggestion
	require.NoError(t, json.Unmarshal(recs.Body.Bytes(), &suggestions))
	assert.NotEmpty(t, suggestions)
}

func TestAdminEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/users", map[string]string{"email": "dev@example.com"}).Code)

	t.Run("list users", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/admin/users", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("toggle active", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/dev-admin/active", map[string]bool{
			"is_active": false,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.False(t, user.IsActive)

		missing := doJSON(t, router, http.MethodPatch, "/api/admin/users/none/active", map[string]bool{
			"is_active": true,
		})
		assert.Equal(t, http.StatusNotFound, missing.Code)
	})

	t.Run("manage courses", func(t *testing.T) {
		created := doJSON(t, router, http.MethodPost, "/api/admin/courses", map[string]any{
			"title":      "Kubernetes Basics",
			"difficulty": "Beginner",
			"rating":     45,
		})
		require.Equal(t, http.StatusCreated, created.Code)

		var course models.Course
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &course))
		require.NotEmpty(t, course.ID)

		updated := doJSON(t, router, http.MethodPut, "/api/admin/courses/"+course.ID, map[string]any{
			"title":      "Kubernetes Fundamentals",
			"difficulty": "Intermediate",
		})
		require.Equal(t, http.StatusOK, updated.Code)
	})

	t.Run("export activities", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/admin/activities/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.NotEmpty(t, w.Body.Bytes())
	})
}
