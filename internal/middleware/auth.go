package middleware

import (
	"net/http"

	"github.com/matrixersp/kanbanup-api/internal/app/session"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Auth resolves the requesting user from the X-Session-Key header and
// stores their id on the request context.
func Auth(sessions session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Session-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		user, err := sessions.GetUserBySessionKey(c.Request.Context(), key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth. Empty on
// unauthenticated routes.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
