package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-gateway/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/usecase"
)

// Client routes the booking flow redirects to when session state is missing
// or does not match the requested id.
const (
	routeSearch = "/search"
	routeHome   = "/"
)

// User-facing messages attached to redirect responses.
const (
	msgNoFlightSelected = "No flight selected. Please search and select a flight."
	msgNoBookingFound   = "No booking information found."
	msgOfferGone        = "This flight may no longer be available."
)

// GatewayHandler handles HTTP requests for the booking gateway endpoints.
type GatewayHandler struct {
	search  usecase.FlightSearchUseCase
	booking usecase.BookingFlowUseCase
	auth    usecase.AuthUseCase
}

// NewGatewayHandler creates a GatewayHandler with the given use cases.
func NewGatewayHandler(search usecase.FlightSearchUseCase, booking usecase.BookingFlowUseCase, auth usecase.AuthUseCase) *GatewayHandler {
	return &GatewayHandler{
		search:  search,
		booking: booking,
		auth:    auth,
	}
}

// Signup handles POST /api/v1/auth/signup
//
// @Summary Create an account
// @Description Create an account at the flight provider
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.SignupRequest true "Account details"
// @Success 201 {object} UserDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unreachable"
// @Router /api/v1/auth/signup [post]
func (h *GatewayHandler) Signup(c echo.Context) error {
	var req domain.SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	user, err := h.auth.Signup(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToUserDTO(user))
}

// Signin handles POST /api/v1/auth/signin
//
// @Summary Sign in
// @Description Exchange credentials for a token; the token is also kept in the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.Credentials true "Credentials"
// @Success 200 {object} SigninResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Invalid credentials"
// @Router /api/v1/auth/signin [post]
func (h *GatewayHandler) Signin(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return response.InvalidRequestBody(c)
	}

	auth, err := h.auth.Signin(c.Request().Context(), middleware.GetSessionID(c), creds)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSigninResponseDTO(auth))
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search flight offers, optionally filtered by price, stops and airlines
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria and optional filters"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unreachable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *GatewayHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	filters := ToFilterCriteria(&req)

	result, err := h.search.Search(c.Request().Context(), middleware.GetSessionID(c), criteria, filters, h.resolveToken(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result))
}

// SelectFlight handles POST /api/v1/flights/:id/select
//
// @Summary Select a flight offer
// @Description Price a previously listed offer and stage it for checkout
// @Tags flights
// @Produce json
// @Param id path string true "Offer id from the search results"
// @Success 200 {object} SelectionDTO
// @Failure 404 {object} response.ErrorDetail "Offer not in the session's result set"
// @Failure 503 {object} response.ErrorDetail "Provider unreachable"
// @Router /api/v1/flights/{id}/select [post]
func (h *GatewayHandler) SelectFlight(c echo.Context) error {
	sel, err := h.booking.Select(c.Request().Context(), middleware.GetSessionID(c), c.Param("id"), h.resolveToken(c))
	if err != nil {
		if errors.Is(err, domain.ErrStateMissing) {
			return response.SeeOtherWithMessage(c, routeSearch, msgNoFlightSelected)
		}
		return h.handleError(c, err)
	}

	return response.OK(c, ToSelectionDTO(sel))
}

// Checkout handles GET /api/v1/bookings/checkout/:flightId
//
// @Summary Load the checkout state
// @Description Return the selected and priced offer staged in the session
// @Tags bookings
// @Produce json
// @Param flightId path string true "Selected offer id"
// @Success 200 {object} SelectionDTO
// @Success 303 {object} response.RedirectDetail "No or mismatched selection; redirect to /search"
// @Router /api/v1/bookings/checkout/{flightId} [get]
func (h *GatewayHandler) Checkout(c echo.Context) error {
	sel, err := h.booking.Checkout(c.Request().Context(), middleware.GetSessionID(c), c.Param("flightId"))
	if err != nil {
		if errors.Is(err, domain.ErrStateMissing) {
			return response.SeeOtherWithMessage(c, routeSearch, msgNoFlightSelected)
		}
		if errors.Is(err, domain.ErrStateMismatch) {
			// Mismatched ids route back without a message.
			return response.SeeOther(c, routeSearch)
		}
		return h.handleError(c, err)
	}

	return response.OK(c, ToSelectionDTO(sel))
}

// BookFlight handles POST /api/v1/bookings
//
// @Summary Book the selected flight
// @Description Submit traveler details against the session's priced offer
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookFlightRequest true "Traveler details"
// @Success 201 {object} ConfirmationDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Success 303 {object} response.RedirectDetail "No selection in session; redirect to /search"
// @Failure 503 {object} response.ErrorDetail "Provider unreachable"
// @Router /api/v1/bookings [post]
func (h *GatewayHandler) BookFlight(c echo.Context) error {
	var req BookFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	conf, err := h.booking.Book(c.Request().Context(), middleware.GetSessionID(c), req.Travelers, h.resolveToken(c))
	if err != nil {
		if errors.Is(err, domain.ErrStateMissing) {
			return response.SeeOtherWithMessage(c, routeSearch, msgNoFlightSelected)
		}
		return h.handleError(c, err)
	}

	return response.Created(c, ToConfirmationDTO(conf))
}

// Confirmation handles GET /api/v1/bookings/confirmation/:id
//
// @Summary Load a booking confirmation
// @Description Return the confirmation stored in the session for the given booking id
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} ConfirmationDTO
// @Success 303 {object} response.RedirectDetail "No or mismatched confirmation; redirect to /"
// @Router /api/v1/bookings/confirmation/{id} [get]
func (h *GatewayHandler) Confirmation(c echo.Context) error {
	conf, err := h.booking.Confirmation(c.Request().Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStateMissing) {
			return response.SeeOtherWithMessage(c, routeHome, msgNoBookingFound)
		}
		if errors.Is(err, domain.ErrStateMismatch) {
			return response.SeeOther(c, routeHome)
		}
		return h.handleError(c, err)
	}

	return response.OK(c, ToConfirmationDTO(conf))
}

// LookupBooking handles GET /api/v1/bookings/:id
//
// @Summary Look up a booking
// @Description Fetch a booking from the provider, bypassing the session
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} ConfirmationDTO
// @Failure 404 {object} response.ErrorDetail "Unknown booking"
// @Router /api/v1/bookings/{id} [get]
func (h *GatewayHandler) LookupBooking(c echo.Context) error {
	conf, err := h.booking.Lookup(c.Request().Context(), c.Param("id"), h.resolveToken(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToConfirmationDTO(conf))
}

// CancelBooking handles DELETE /api/v1/bookings/:id
//
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 204 "Booking cancelled"
// @Failure 404 {object} response.ErrorDetail "Unknown booking"
// @Router /api/v1/bookings/{id} [delete]
func (h *GatewayHandler) CancelBooking(c echo.Context) error {
	if err := h.booking.Cancel(c.Request().Context(), c.Param("id"), h.resolveToken(c)); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// ResetSession handles DELETE /api/v1/session
//
// @Summary Reset the booking session
// @Description Clear all search and booking state stored for this session
// @Tags session
// @Success 204 "Session cleared"
// @Router /api/v1/session [delete]
func (h *GatewayHandler) ResetSession(c echo.Context) error {
	if err := h.booking.Reset(c.Request().Context(), middleware.GetSessionID(c)); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *GatewayHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *GatewayHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. Booking-flow
// state errors are handled per endpoint because the redirect target differs.
func (h *GatewayHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrOfferNotFound) {
		return response.NotFound(c, msgOfferGone)
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		return response.Unauthorized(c, err.Error())
	}

	if errors.Is(err, domain.ErrConnectivity) {
		return response.ConnectivityError(c, domain.ErrConnectivity.Error())
	}

	// Provider errors pass through with their original status and the
	// normalized message.
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return response.UpstreamFailure(c, upstream.StatusCode, upstream.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	return response.InternalServerError(c)
}

// resolveToken returns the bearer token to forward upstream: the request's own
// Authorization header wins over the token stored at signin.
func (h *GatewayHandler) resolveToken(c echo.Context) string {
	return h.auth.ResolveToken(c.Request().Context(), middleware.GetSessionID(c), bearerToken(c))
}

// bearerToken extracts the bearer token from the Authorization header, or ""
// when absent.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
