package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
)

type CourseHandler struct {
	BaseHandler
	courses services.CourseService
}

func NewCourseHandler(courses services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: NewBaseHandler(logger),
		courses:     courses,
	}
}

// ListCourses returns the course catalog
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 20, max: 100)"
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty (Beginner, Intermediate, Advanced)"
// @Success 200 {object} map[string]interface{} "Course list response"
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	h.LogRequest(c, "Listing courses")

	filters := h.parseCourseFilters(c)
	courses, total, err := h.courses.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	page := (filters.Offset / max(filters.Limit, 1)) + 1
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   total,
		"page":    page,
		"size":    filters.Limit,
	})
}

// RecommendedCourses returns the recommended slice of the catalog for a user
// @Summary Recommended courses
// @Tags courses
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Course
// @Router /courses/recommended/{userId} [get]
func (h *CourseHandler) RecommendedCourses(c *gin.Context) {
	userID := c.Param("userId")
	h.LogRequest(c, "Listing recommended courses", "user_id", userID)

	courses, err := h.courses.Recommended(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// SearchCourses performs a capped free-text search over the catalog
// @Summary Search courses
// @Tags courses
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.Course
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /courses/search [get]
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Search query parameter 'q' is required",
		})
		return
	}

	h.LogRequest(c, "Searching courses", "query", query)

	courses, err := h.courses.Search(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) parseCourseFilters(c *gin.Context) repositories.CourseFilters {
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

	filters := repositories.CourseFilters{
		Limit:  size,
		Offset: (page - 1) * size,
	}
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if diff := models.DifficultyLevel(c.Query("difficulty")); diff.Valid() {
		filters.Difficulty = &diff
	}

	return filters
}
