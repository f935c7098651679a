package middleware

import (
	"strings"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser is the key for the authenticated user in gin context
	ContextKeyUser = "current_user"
	// ContextKeyToken is the key for the raw session token in gin context
	ContextKeyToken = "session_token"
)

// ExtractToken pulls the session token from the Authorization header or,
// failing that, the session cookie. Returns "" when neither is present.
func ExtractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware resolves the session token to a user and stores the user in
// the gin context. Requests without a live session are rejected.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c, authService.CookieName())
		if token == "" {
			response.Unauthorized(c, "missing session token")
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyToken, token)

		c.Next()
	}
}

// GetUser gets the authenticated user from the gin context
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetToken gets the raw session token from the gin context
func GetToken(c *gin.Context) string {
	token, exists := c.Get(ContextKeyToken)
	if !exists {
		return ""
	}
	return token.(string)
}
