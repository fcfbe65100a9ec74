package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(users services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		users:       users,
	}
}

// Bootstrap creates the caller's user record on first login
// @Summary Bootstrap user
// @Description Create the caller's record if absent; repeat calls return the stored record
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} models.User "Existing user"
// @Success 201 {object} models.User "Newly created user"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /users [post]
func (h *UserHandler) Bootstrap(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	// The body is optional; the verified token is the source of truth for
	// identity, the body may only enrich the profile.
	var req validator.UserCreateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid request body",
				Details: err.Error(),
			})
			return
		}
	}

	boot := services.BootstrapRequest{
		ID:        principal.UID,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
	}
	if boot.Email == "" {
		boot.Email = principal.Email
	}
	if boot.FullName == "" {
		boot.FullName = principal.Name
	}

	h.LogRequest(c, "Bootstrapping user", "user_id", boot.ID)

	user, created, err := h.users.Bootstrap(c.Request.Context(), boot)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// GetUser returns a user's dashboard profile
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	h.LogRequest(c, "Getting user", "user_id", userID)

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial profile update
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /user/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req validator.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating user", "user_id", userID)

	user, err := h.users.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
