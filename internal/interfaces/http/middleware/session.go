// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// ClientSession resolves the client session id that scopes cart and session
// state. An incoming X-Session-ID is reused; otherwise a fresh id is minted
// and echoed back so the client can persist it.
func ClientSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header(sessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionIDFromContext returns the client session id for this request.
// Authenticated requests prefer the id bound into the access token.
func GetSessionIDFromContext(c *gin.Context) string {
	sessionID, _ := c.Get("session_id")
	if s, ok := sessionID.(string); ok {
		return s
	}
	return ""
}
