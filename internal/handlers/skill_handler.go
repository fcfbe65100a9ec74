package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type SkillHandler struct {
	BaseHandler
	skills services.SkillService
}

func NewSkillHandler(skills services.SkillService, logger utils.Logger) *SkillHandler {
	return &SkillHandler{
		BaseHandler: NewBaseHandler(logger),
		skills:      skills,
	}
}

// ListSkills returns a user's tracked skills
// @Summary List skills
// @Tags skills
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.SkillProgress
// @Router /skills/{userId} [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID := c.Param("userId")
	h.LogRequest(c, "Listing skills", "user_id", userID)

	skills, err := h.skills.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// UpsertSkill creates or updates progress for one (user, skill) pair
// @Summary Upsert skill progress
// @Tags skills
// @Accept json
// @Produce json
// @Success 200 {object} models.SkillProgress
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /skills [post]
func (h *SkillHandler) UpsertSkill(c *gin.Context) {
	var req validator.SkillUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Upserting skill", "user_id", req.UserID, "skill", req.SkillName)

	skill, err := h.skills.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}
