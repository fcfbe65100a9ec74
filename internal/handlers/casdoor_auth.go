package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/config"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/utils"
)

// Principal is the authenticated caller attached to the gin context.
type Principal struct {
	UID   string          `json:"uid"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"`
}

const (
	contextKeyPrincipal = "principal"
	contextKeyUserID    = "user_id"
	contextKeyUserRole  = "user_role"
)

// devPrincipal is attached when the identity provider is unconfigured and
// the process runs under the development profile.
var devPrincipal = Principal{
	UID:   "dev-admin",
	Email: "dev-admin@localhost",
	Name:  "Development Admin",
	Role:  models.RoleAdmin,
}

// CasdoorAuthMiddleware verifies bearer tokens with Casdoor and resolves
// the caller's role from the user store.
type CasdoorAuthMiddleware struct {
	client   *casdoorsdk.Client
	userRepo repositories.UserRepository
	devMode  bool
	logger   utils.Logger
}

// NewCasdoorAuthMiddleware creates the authentication middleware. When the
// provider is unconfigured the returned middleware either attaches a dev
// principal (development profile) or fails closed (any other profile).
func NewCasdoorAuthMiddleware(cfg config.CasdoorConfig, devMode bool, userRepo repositories.UserRepository, logger utils.Logger) *CasdoorAuthMiddleware {
	var client *casdoorsdk.Client
	if cfg.Configured() {
		client = casdoorsdk.NewClient(
			cfg.Endpoint,
			cfg.ClientID,
			cfg.ClientSecret,
			cfg.Cert,
			cfg.Organization,
			cfg.Application,
		)
	}

	return &CasdoorAuthMiddleware{
		client:   client,
		userRepo: userRepo,
		devMode:  devMode,
		logger:   logger,
	}
}

// AuthMiddleware returns the gin middleware that authenticates every request.
func (cam *CasdoorAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cam.client == nil {
			if cam.devMode {
				setPrincipal(c, devPrincipal)
				c.Next()
				return
			}
			// Never fail open outside the development profile.
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Message: "Identity verification is unavailable",
			})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := cam.client.ParseJwtToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		principal, err := cam.resolvePrincipal(c, claims)
		if err != nil {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Unable to resolve caller identity",
			})
			c.Abort()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// resolvePrincipal builds the principal from verified claims. The stored
// role wins when the user exists; callers without a record get the default
// role until the bootstrap endpoint creates one.
func (cam *CasdoorAuthMiddleware) resolvePrincipal(c *gin.Context, claims *casdoorsdk.Claims) (Principal, error) {
	uid := claims.Id
	if uid == "" {
		return Principal{}, fmt.Errorf("token carries no subject id")
	}

	principal := Principal{
		UID:   uid,
		Email: claims.User.Email,
		Name:  claims.User.DisplayName,
		Role:  models.RoleUser,
	}

	user, err := cam.userRepo.GetByID(c.Request.Context(), uid)
	switch {
	case err == nil:
		if !user.IsActive {
			return Principal{}, fmt.Errorf("account %s is deactivated", uid)
		}
		principal.Role = user.Role
		if principal.Email == "" {
			principal.Email = user.Email
		}
		if principal.Name == "" {
			principal.Name = user.FullName
		}
	case errors.Is(err, repositories.ErrNotFound):
		// First login: no record yet, keep the default role.
	default:
		return Principal{}, fmt.Errorf("user lookup: %w", err)
	}

	return principal, nil
}

// RequireRole allows the request only when the principal's role is in the
// given set. "user" and "student" are interchangeable; admin is not granted
// implicitly.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	required := make([]string, len(roles))
	for i, r := range roles {
		required[i] = string(r)
	}

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"message":  "insufficient permissions",
				"required": required,
				"current":  "",
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if principal.Role.Matches(r) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"message":  "insufficient permissions",
			"required": required,
			"current":  string(principal.Role),
		})
		c.Abort()
	}
}

// RequireOwnerOrAdmin allows the request when the principal is an admin or
// owns the resource identified by ownerID.
func RequireOwnerOrAdmin(ownerID func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Caller identity missing",
			})
			c.Abort()
			return
		}

		if principal.Role == models.RoleAdmin || principal.UID == ownerID(c) {
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "You may only access your own resources",
		})
		c.Abort()
	}
}

func setPrincipal(c *gin.Context, p Principal) {
	c.Set(contextKeyPrincipal, p)
	c.Set(contextKeyUserID, p.UID)
	c.Set(contextKeyUserRole, p.Role)
}

// GetPrincipal extracts the authenticated principal from the gin context.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(contextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// GetUserIDFromContext extracts the caller's user id from the gin context.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(contextKeyUserID)
	if !exists {
		return "", fmt.Errorf("user id not found in context")
	}
	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid user id type in context")
	}
	return id, nil
}
