package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type InterviewHandler struct {
	BaseHandler
	interviews services.InterviewService
}

func NewInterviewHandler(interviews services.InterviewService, logger utils.Logger) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler: NewBaseHandler(logger),
		interviews:  interviews,
	}
}

// ListSessions returns a user's past mock-interview sessions
// @Summary List interview sessions
// @Tags interviews
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.InterviewSession
// @Router /interviews/{userId} [get]
func (h *InterviewHandler) ListSessions(c *gin.Context) {
	userID := c.Param("userId")
	h.LogRequest(c, "Listing interview sessions", "user_id", userID)

	sessions, err := h.interviews.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Question generates one practice question for the requested interview type
// @Summary Interview question
// @Tags interviews
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "question"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /interview/question [post]
func (h *InterviewHandler) Question(c *gin.Context) {
	var req validator.InterviewQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Generating interview question", "type", req.Type)

	question, err := h.interviews.Question(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

// Analyze scores an interview answer and persists the session
// @Summary Analyze interview answer
// @Tags interviews
// @Accept json
// @Produce json
// @Success 200 {object} services.InterviewAnalyzeResult
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /interview/analyze [post]
func (h *InterviewHandler) Analyze(c *gin.Context) {
	var req validator.InterviewAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Analyzing interview answer", "user_id", req.UserID, "type", req.Type)

	result, err := h.interviews.Analyze(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
