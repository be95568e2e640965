// Package response provides standardized HTTP response builders for the
// booking gateway API. It centralizes response formatting to ensure
// consistency across all endpoints, including the redirect responses the
// booking flow uses when session state is missing or mismatched.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// RedirectDetail is the body of a redirect response. Message is only present
// on flows that surface an error to the user before redirecting.
type RedirectDetail struct {
	// Redirect is the client route to navigate to
	Redirect string `json:"redirect"`

	// Message is an optional user-facing error message
	Message string `json:"message,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodeConnectivity    = "connectivity_error"
	CodeUpstreamError   = "upstream_error"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// SeeOther writes a 303 redirect with no user-facing message. Used when the
// flow silently routes the user back (stored state id mismatch).
func SeeOther(c echo.Context, location string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusSeeOther, &RedirectDetail{Redirect: location})
}

// SeeOtherWithMessage writes a 303 redirect carrying an error message for the
// user. Used when required session state is missing.
func SeeOtherWithMessage(c echo.Context, location, message string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusSeeOther, &RedirectDetail{Redirect: location, Message: message})
}
