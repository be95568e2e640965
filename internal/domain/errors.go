package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking flow. Handlers map these to HTTP responses
// and redirects; use errors.Is to test for them.
var (
	// ErrInvalidRequest indicates the caller sent invalid search criteria or
	// traveler data.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrOfferNotFound indicates the requested offer id is not in the
	// session's stored result set.
	ErrOfferNotFound = errors.New("flight offer not found")

	// ErrStateMissing indicates an expected scratch key is absent from the
	// session (state expired or the flow was entered out of order).
	ErrStateMissing = errors.New("required booking state is missing")

	// ErrStateMismatch indicates the stored offer or confirmation id does not
	// match the one in the request path.
	ErrStateMismatch = errors.New("stored booking state does not match request")

	// ErrUnauthorized indicates the upstream rejected the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConnectivity indicates the upstream could not be reached at all.
	ErrConnectivity = errors.New("unable to connect to the flight service, please check your connection and try again")
)

// UpstreamError is a normalized non-2xx response from the provider API.
// Message follows the provider error contract: errors[0].detail or
// errors[0].title when the provider sends its error array, otherwise the
// payload's error/message field, otherwise a generic status message.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the provider
	StatusCode int

	// Message is the normalized human-readable message
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return e.Message
}

// NewUpstreamError creates an UpstreamError with the given status and message.
func NewUpstreamError(status int, message string) *UpstreamError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return &UpstreamError{StatusCode: status, Message: message}
}
