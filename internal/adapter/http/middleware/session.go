package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie carrying the session identifier.
	SessionCookieName = "session_id"

	// sessionIDKey is the context key for storing the session ID.
	sessionIDKey = "session_id"
)

// Session returns middleware that establishes the caller's session identity.
// An incoming session_id cookie is reused; otherwise a new UUID is minted and
// set on the response. The booking flow's scratch store is keyed by this ID.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.New().String()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionIDKey, sessionID)
			return next(c)
		}
	}
}

// GetSessionID retrieves the session ID from the echo context.
// Returns an empty string if the session middleware did not run.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
