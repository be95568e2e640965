package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - first, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - logs all requests with request ID
//  3. Recover - catches panics and returns 500 (wraps handlers)
//  4. CORS - credentialed CORS for the browser client
//  5. Session - establishes the session identity the scratch store is keyed by
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, allowOrigins []string) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(Session())
}
