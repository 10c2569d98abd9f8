package handlers

import (
	"net/http"

	"nars_shop/internal/models"
	"nars_shop/internal/redis"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session_id"
	sessionCtxKey = "session"
)

// RequireSession resolves the session cookie against redis and attaches the
// authenticated principal to the request context.
func RequireSession(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		session, err := sessions.GetSession(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		c.Set(sessionCtxKey, session)
		c.Set(sessionCookie, sessionID)
		c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil || session.Role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *redis.SessionData {
	value, ok := c.Get(sessionCtxKey)
	if !ok {
		return nil
	}
	session, _ := value.(*redis.SessionData)
	return session
}
