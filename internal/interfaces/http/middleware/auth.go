package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/infrastructure/auth"
	"bugtrail/internal/shared/constants"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores the caller's user id in
// the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
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

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// CallerID reads the authenticated user id set by RequireAuth.
func CallerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
