package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type ActivityHandler struct {
	BaseHandler
	activities services.ActivityService
}

func NewActivityHandler(activities services.ActivityService, logger utils.Logger) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler: NewBaseHandler(logger),
		activities:  activities,
	}
}

// ListActivities returns a user's activity trail, newest first
// @Summary List activities
// @Tags activities
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Max entries (default: 50)"
// @Success 200 {array} models.Activity
// @Router /activities/{userId} [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID := c.Param("userId")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 200 {
			limit = l
		}
	}

	h.LogRequest(c, "Listing activities", "user_id", userID)

	activities, err := h.activities.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// RecordActivity appends one entry to the audit trail
// @Summary Record activity
// @Tags activities
// @Accept json
// @Produce json
// @Success 201 {object} models.Activity
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /activities [post]
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	var req validator.ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Recording activity", "user_id", req.UserID, "type", req.Type)

	activity, err := h.activities.Record(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}
