package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller identity set by the gateway.
const UserIDHeader = "X-User-ID"

// ContextKeyUserID is the Gin context key holding the caller's user ID.
const ContextKeyUserID = "auth_user_id"

const maxUserIDLength = 64

// RequireUser rejects requests without a usable user identity and stores
// the identity in the Gin context for handlers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + UserIDHeader + " header"})
			return
		}
		if len(userID) > maxUserIDLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID returns the caller set by RequireUser, or "" on unprotected routes.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}
