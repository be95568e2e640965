// Package middleware provides HTTP middleware for cross-cutting concerns:
// request correlation, structured request logging, panic recovery, and the
// session cookie the booking flow's scratch store is keyed by.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the correlation id between client, gateway and logs.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the context key for storing the request ID.
	requestIDKey = "request_id"
)

// RequestID returns middleware that assigns each request a correlation id.
// An id supplied by the caller in X-Request-ID is kept, so a browser client
// can correlate its own traces with the gateway's logs; otherwise a UUID is
// minted. The id is echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if the RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
