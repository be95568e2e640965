// Package integration provides helpers and integration tests for the booking
// gateway. Integration tests exercise the full stack: session middleware, HTTP
// handlers, use cases, the in-memory session store, and a configurable mock
// provider gateway.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-booking/flight-booking-gateway/internal/adapter/http"
	"github.com/flight-booking/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
	"github.com/flight-booking/flight-booking-gateway/internal/usecase"
	"github.com/flight-booking/flight-booking-gateway/test/mock"
)

// TestServer wraps an Echo instance and carries the session cookie across
// requests, so a sequence of calls behaves like one browser session.
type TestServer struct {
	Echo    *echo.Echo
	Gateway *mock.Gateway
	Store   session.Store

	cookie *http.Cookie
}

// NewTestServer creates a test server wired to the given mock gateway.
func NewTestServer(gateway *mock.Gateway) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Session())

	store := session.NewMemoryStore(30*time.Minute, nil)

	handler := httpAdapter.NewGatewayHandler(
		usecase.NewFlightSearchUseCase(gateway, store),
		usecase.NewBookingFlowUseCase(gateway, store, nil),
		usecase.NewAuthUseCase(gateway, store),
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Gateway: gateway,
		Store:   store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request, reusing the server's session cookie.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if ts.cookie != nil {
		httpReq.AddCookie(ts.cookie)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			ts.cookie = c
		}
	}

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a flight search with the given body.
func (ts *TestServer) Search(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Body: body})
}

// Select selects an offer from the current session's search results.
func (ts *TestServer) Select(offerID string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/" + offerID + "/select"})
}

// Checkout fetches the checkout view for a selected offer.
func (ts *TestServer) Checkout(offerID string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/bookings/checkout/" + offerID})
}

// Book submits travelers against the session's priced offer.
func (ts *TestServer) Book(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/bookings", Body: body})
}

// Confirmation fetches the confirmation view for a booking.
func (ts *TestServer) Confirmation(bookingID string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/bookings/confirmation/" + bookingID})
}

// ResetSession clears the session's booking-flow state.
func (ts *TestServer) ResetSession() Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: "/api/v1/session"})
}

// ParseJSON parses the response body into a generic map.
func (r *Response) ParseJSON() (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// DefaultSearchRequest returns a valid one-way search request body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "JFK",
		"destination":   "LHR",
		"departureDate": FutureDate(),
		"adults":        1,
	}
}

// DefaultTravelers returns a single valid adult traveler payload.
func DefaultTravelers() map[string]interface{} {
	return map[string]interface{}{
		"travelers": []map[string]interface{}{{
			"id":          "1",
			"dateOfBirth": "1990-01-01",
			"name":        map[string]string{"firstName": "Jane", "lastName": "Doe"},
			"contact": map[string]interface{}{
				"emailAddress": "jane@example.com",
				"phones":       []map[string]string{{"number": "5551234567"}},
			},
			"documents": []map[string]interface{}{{
				"documentType":    "PASSPORT",
				"number":          "X1234567",
				"expiryDate":      "2030-01-01",
				"issuanceCountry": "US",
			}},
		}},
	}
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}
