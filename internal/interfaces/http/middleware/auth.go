package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/domain/user"
	"github.com/shiken-app/shiken/internal/infrastructure/auth"
	"github.com/shiken-app/shiken/internal/shared/constants"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// AccessTokenCookie is the session cookie name.
const AccessTokenCookie = "access_token"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the session token from the cookie or Authorization
// header and stores the caller's identity in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// RequireAdmin gates admin routes. The admin flag is re-checked against the
// database so a stale token cannot outlive a demotion.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Warnw("failed to load user for admin check", "user_id", userID, "error", err)
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		if !u.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
