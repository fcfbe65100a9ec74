package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type ChatHandler struct {
	BaseHandler
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		chat:        chat,
	}
}

// History returns a user's mentor chat transcript in send order
// @Summary Chat history
// @Tags chat
// @Produce json
// @Param userId path string true "User ID"
// @Param session query string false "Session ID (default: default)"
// @Success 200 {array} models.ChatMessage
// @Router /chat/{userId} [get]
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.Param("userId")
	sessionID := c.DefaultQuery("session", models.DefaultChatSession)

	h.LogRequest(c, "Loading chat history", "user_id", userID, "session_id", sessionID)

	messages, err := h.chat.History(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Send stores the user's message and returns it together with the mentor reply
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} services.ChatSendResult
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req validator.ChatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Sending chat message", "user_id", req.UserID)

	result, err := h.chat.Send(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
