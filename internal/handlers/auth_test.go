package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsage/skillsage-service/internal/config"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories/memory"
	"github.com/skillsage/skillsage-service/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testUtilsLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
}

// principalMiddleware injects a fixed principal, standing in for a
// verified token.
func principalMiddleware(p Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		setPrincipal(c, p)
		c.Next()
	}
}

func TestRequireRoleMatrix(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		allowed    []models.UserRole
		wantStatus int
	}{
		{"admin on admin route", models.RoleAdmin, []models.UserRole{models.RoleAdmin}, http.StatusOK},
		{"student on admin route", models.RoleStudent, []models.UserRole{models.RoleAdmin}, http.StatusForbidden},
		{"user on admin route", models.RoleUser, []models.UserRole{models.RoleAdmin}, http.StatusForbidden},
		{"mentor on admin route", models.RoleMentor, []models.UserRole{models.RoleAdmin}, http.StatusForbidden},
		{"user satisfies student guard", models.RoleUser, []models.UserRole{models.RoleStudent}, http.StatusOK},
		{"student satisfies user guard", models.RoleStudent, []models.UserRole{models.RoleUser}, http.StatusOK},
		{"admin not implicit on student guard", models.RoleAdmin, []models.UserRole{models.RoleStudent}, http.StatusForbidden},
		{"mentor on mentor guard", models.RoleMentor, []models.UserRole{models.RoleMentor}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/guarded",
				principalMiddleware(Principal{UID: "u1", Role: tt.role}),
				RequireRole(tt.allowed...),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusForbidden {
				var body struct {
					Message  string   `json:"message"`
					Required []string `json:"required"`
					Current  string   `json:"current"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Message)
				assert.Equal(t, string(tt.role), body.Current)
				require.Len(t, body.Required, len(tt.allowed))
				for i, r := range tt.allowed {
					assert.Equal(t, string(r), body.Required[i])
				}
			}
		})
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	newRouter := func(p Principal) *gin.Engine {
		router := gin.New()
		router.GET("/res/:id",
			principalMiddleware(p),
			RequireOwnerOrAdmin(paramOwner("id")),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return router
	}

	t.Run("owner allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(Principal{UID: "u1", Role: models.RoleStudent}).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/res/u1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin allowed on foreign resource", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(Principal{UID: "admin-1", Role: models.RoleAdmin}).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/res/u1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(Principal{UID: "u2", Role: models.RoleStudent}).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/res/u1", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthMiddlewareDegradedMode(t *testing.T) {
	repo := memory.NewRepository()
	unconfigured := config.CasdoorConfig{}

	t.Run("development attaches dev admin", func(t *testing.T) {
		auth := NewCasdoorAuthMiddleware(unconfigured, true, repo.User(), testUtilsLogger())

		router := gin.New()
		router.GET("/whoami", auth.AuthMiddleware(), func(c *gin.Context) {
			p, ok := GetPrincipal(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, p)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var p Principal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, models.RoleAdmin, p.Role)
		assert.Equal(t, "dev-admin", p.UID)
	})

	t.Run("any other profile fails closed", func(t *testing.T) {
		auth := NewCasdoorAuthMiddleware(unconfigured, false, repo.User(), testUtilsLogger())

		router := gin.New()
		router.GET("/whoami", auth.AuthMiddleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer anything")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
