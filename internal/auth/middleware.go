package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName carries the identity token.
const CookieName = "auth_token"

const contextKeyUserID = "user_id"

// Verifier resolves a credential to a user id.
type Verifier interface {
	Verify(ctx context.Context, credential string) (int64, error)
}

// UserIDFromContext returns the user set by RequireUser, or 0 outside the protected group.
func UserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(contextKeyUserID)
}

// CredentialFromRequest reads the auth cookie, falling back to a Bearer header.
func CredentialFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		return token
	}
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireUser returns a middleware that verifies the caller's credential
// and sets the current user ID in context. If missing or invalid, responds with 401.
func RequireUser(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := CredentialFromRequest(c)
		if credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No authentication token found"})
			return
		}
		userID, err := v.Verify(c.Request.Context(), credential)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid or expired token"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
