package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName   = "sessionId"
	SessionCookieMaxAge = 60 * 60 * 24 * 7
)

// NewSessionID mints an opaque session token. It is never validated against
// anything; it only tags which browsing session placed an order.
func NewSessionID() string {
	return uuid.NewString()
}

// EnsureSessionCookie returns the session id from the request cookie,
// minting and setting a fresh one when absent. The bool reports whether a
// new cookie was issued.
func EnsureSessionCookie(c *gin.Context) (string, bool) {
	if sid, err := c.Cookie(SessionCookieName); err == nil && sid != "" {
		return sid, false
	}
	sid := NewSessionID()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sid, SessionCookieMaxAge, "/", "", false, true)
	return sid, true
}
