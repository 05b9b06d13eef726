package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	userCtxKey    = "userId"
)

// sessionMiddleware validates the session cookie and stores the resolved
// user id in the Gin context. Handlers only ever use this server-resolved
// id; a user id from the client is never trusted.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}

	uid, err := h.services.ValidateToken(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired session",
		})
		return
	}

	c.Set(userCtxKey, uid)
	c.Next()
}

// userID returns the authenticated user id stored by sessionMiddleware.
func userID(c *gin.Context) int64 {
	v, _ := c.Get(userCtxKey)
	id, _ := v.(int64)
	return id
}

// setSessionCookie delivers the token in an HTTP-only cookie; clients never
// construct or read it.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
