package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

// ResumeHandler covers the resume tools and AI course recommendations.
type ResumeHandler struct {
	BaseHandler
	resume          services.ResumeService
	recommendations services.RecommendationService
}

func NewResumeHandler(resume services.ResumeService, recommendations services.RecommendationService, logger utils.Logger) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:     NewBaseHandler(logger),
		resume:          resume,
		recommendations: recommendations,
	}
}

// Analyze scores a resume against a job description
// @Summary Analyze resume
// @Tags resume
// @Accept json
// @Produce json
// @Success 200 {object} ai.ResumeAnalysis
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	var req validator.ResumeAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Analyzing resume")

	analysis, err := h.resume.Analyze(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// CoverLetter drafts a cover letter from a resume and job description
// @Summary Generate cover letter
// @Tags resume
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "cover_letter"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /resume/cover-letter [post]
func (h *ResumeHandler) CoverLetter(c *gin.Context) {
	var req validator.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Generating cover letter")

	letter, err := h.resume.CoverLetter(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cover_letter": letter})
}

// Roast returns blunt feedback on a resume
// @Summary Roast resume
// @Tags resume
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "roast"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /resume/roast [post]
func (h *ResumeHandler) Roast(c *gin.Context) {
	var req validator.ResumeRoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Roasting resume")

	roast, err := h.resume.Roast(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roast": roast})
}

// Recommend suggests courses from the caller's skills and interests
// @Summary Course recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Success 200 {array} ai.CourseSuggestion
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /recommendations [post]
func (h *ResumeHandler) Recommend(c *gin.Context) {
	var req validator.RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Recommending courses")

	suggestions, err := h.recommendations.Recommend(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
