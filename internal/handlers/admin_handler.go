package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler covers the back-office surface: user management, catalog
// content management and the activities audit trail.
type AdminHandler struct {
	BaseHandler
	users      services.UserService
	courses    services.CourseService
	activities services.ActivityService
}

func NewAdminHandler(users services.UserService, courses services.CourseService, activities services.ActivityService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		users:       users,
		courses:     courses,
		activities:  activities,
	}
}

// ListUsers returns a filtered, paginated user list.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Admin listing users")

	filters := h.parseUserFilters(c)
	users, total, err := h.users.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	page := (filters.Offset / max(filters.Limit, 1)) + 1
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"size":  filters.Limit,
	})
}

// SetUserActive toggles a user's active flag.
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	userID := c.Param("id")

	var req validator.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Field 'is_active' is required",
		})
		return
	}

	h.LogRequest(c, "Admin toggling user active flag", "user_id", userID, "is_active", *req.IsActive)

	user, err := h.users.SetActive(c.Request.Context(), userID, *req.IsActive)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateCourse adds a course to the catalog.
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req validator.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Admin creating course", "title", req.Title)

	course, err := h.courses.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// UpdateCourse replaces a course's catalog entry.
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	courseID := c.Param("id")

	var req validator.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Admin updating course", "course_id", courseID)

	course, err := h.courses.Update(c.Request.Context(), courseID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// ListActivities returns the platform-wide audit trail, filtered.
func (h *AdminHandler) ListActivities(c *gin.Context) {
	h.LogRequest(c, "Admin listing activities")

	filters := h.parseActivityFilters(c)
	activities, total, err := h.activities.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	page := (filters.Offset / max(filters.Limit, 1)) + 1
	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"total":      total,
		"page":       page,
		"size":       filters.Limit,
	})
}

// ExportActivities streams the filtered audit trail as an xlsx workbook.
func (h *AdminHandler) ExportActivities(c *gin.Context) {
	h.LogRequest(c, "Admin exporting activities")

	filters := h.parseActivityFilters(c)
	// Exports ignore pagination.
	filters.Limit = 0
	filters.Offset = 0

	data, err := h.activities.ExportXLSX(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("activities-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *AdminHandler) parseUserFilters(c *gin.Context) repositories.UserFilters {
	page := 1
	size := 20

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
			size = s
		}
	}

	filters := repositories.UserFilters{
		Query:  c.Query("q"),
		Limit:  size,
		Offset: (page - 1) * size,
	}
	if role := models.UserRole(c.Query("role")); role.Valid() {
		filters.Role = &role
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			filters.IsActive = &active
		}
	}

	return filters
}

func (h *AdminHandler) parseActivityFilters(c *gin.Context) repositories.ActivityFilters {
	page := 1
	size := 50

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 200 {
			size = s
		}
	}

	filters := repositories.ActivityFilters{
		Limit:  size,
		Offset: (page - 1) * size,
	}
	if userID := c.Query("user_id"); userID != "" {
		filters.UserID = &userID
	}
	if t := models.ActivityType(c.Query("type")); t.Valid() {
		filters.Type = &t
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filters.DateFrom = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			filters.DateTo = &to
		}
	}

	return filters
}
