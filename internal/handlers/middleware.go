package handlers

import (
	"net/http"
	"strings"

	"paywall/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	// sessionCookie carries the session token for browser clients; API
	// clients may send it as a Bearer token instead.
	sessionCookie = "session"
	sessionKey    = "session"

	sessionTTLSeconds = 3600
)

// sessionMiddleware requires an authenticated session and stores it in the
// Gin context. Anonymous callers get 401 and the handler never runs.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "not logged in",
		})
		return
	}

	sess, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired session",
		})
		return
	}

	c.Set(sessionKey, sess)
	c.Next()
}

// extractToken reads the session token from the Authorization header
// (Bearer scheme) or, failing that, from the session cookie. A malformed
// header does not mask a valid cookie; browsers keep their session.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

// sessionFromContext fetches the session stored by sessionMiddleware.
func sessionFromContext(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	sess, ok := v.(models.Session)
	return sess, ok
}

// setSessionCookie mirrors the token into a cookie so page navigation
// (GET /dashboard) carries the session without a header.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, sessionTTLSeconds, "/", "", false, true)
}
