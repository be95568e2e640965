package amadeus

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// genericProviderMessage is surfaced when the provider sends its error array
// with neither detail nor title on the first element.
const genericProviderMessage = "an unexpected error occurred with the flight service"

// errorPayload covers both error shapes the provider sends: the Amadeus-style
// errors array and the flat error/message form.
type errorPayload struct {
	Errors  []providerError `json:"errors"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// providerError is one entry of the provider-style errors array.
type providerError struct {
	Status int    `json:"status,omitempty"`
	Code   any    `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// normalizeError turns a non-2xx provider response into a domain.UpstreamError.
// Precedence: errors[0].detail, errors[0].title, generic provider message when
// the errors array is present; otherwise the payload's error field, then its
// message field, then "request failed with status N". An undecodable body
// falls back to the raw status line.
func normalizeError(resp *http.Response) error {
	body, readErr := io.ReadAll(resp.Body)

	var payload errorPayload
	if readErr != nil || json.Unmarshal(body, &payload) != nil {
		return domain.NewUpstreamError(resp.StatusCode,
			fmt.Sprintf("server error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	if len(payload.Errors) > 0 {
		primary := payload.Errors[0]
		switch {
		case primary.Detail != "":
			return domain.NewUpstreamError(resp.StatusCode, primary.Detail)
		case primary.Title != "":
			return domain.NewUpstreamError(resp.StatusCode, primary.Title)
		default:
			return domain.NewUpstreamError(resp.StatusCode, genericProviderMessage)
		}
	}

	if payload.Error != "" {
		return domain.NewUpstreamError(resp.StatusCode, payload.Error)
	}
	if payload.Message != "" {
		return domain.NewUpstreamError(resp.StatusCode, payload.Message)
	}

	return domain.NewUpstreamError(resp.StatusCode, "")
}
