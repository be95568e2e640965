package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
	"github.com/flight-booking/flight-booking-gateway/internal/usecase"
)

// handlerFixture wires the full handler stack over a mock provider gateway
// and an in-memory session store. The session cookie is carried across
// requests so multi-step flows behave like one browser session.
type handlerFixture struct {
	t       *testing.T
	echo    *echo.Echo
	gateway *domain.MockProviderGateway
	store   session.Store
	cookie  *http.Cookie
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := domain.NewMockProviderGateway(ctrl)
	store := session.NewMemoryStore(30*time.Minute, nil)

	searchUC := usecase.NewFlightSearchUseCase(gateway, store)
	bookingUC := usecase.NewBookingFlowUseCase(gateway, store, nil)
	authUC := usecase.NewAuthUseCase(gateway, store)

	e := echo.New()
	e.Use(middleware.Session())
	RegisterRoutes(e, NewGatewayHandler(searchUC, bookingUC, authUC))

	return &handlerFixture{t: t, echo: e, gateway: gateway, store: store}
}

// do executes a request, reusing the fixture's session cookie.
func (f *handlerFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			f.cookie = c
		}
	}
	return rec
}

func (f *handlerFixture) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	f.t.Helper()
	var body map[string]interface{}
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func searchBody() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "JFK",
		"destination":   "LHR",
		"departureDate": "2026-09-15",
		"adults":        1,
	}
}

func sampleOffer(id, total string) domain.FlightOffer {
	return domain.FlightOffer{
		ID:    id,
		Price: domain.Price{Total: total, Currency: "USD"},
		Itineraries: []domain.Itinerary{{
			Segments: []domain.Segment{{
				CarrierCode: "BA",
				Number:      "100",
				Departure:   domain.SegmentPoint{IATACode: "JFK", At: "2026-09-15T08:00"},
				Arrival:     domain.SegmentPoint{IATACode: "LHR", At: "2026-09-15T20:00"},
			}},
		}},
		TravelerPricings: []domain.TravelerPricing{
			{TravelerID: "1", TravelerType: domain.TravelerTypeAdult},
		},
	}
}

func TestSearchFlights_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return([]domain.FlightOffer{sampleOffer("offer-1", "450.00")}, nil)

	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())

	require.Equal(t, http.StatusOK, rec.Code)
	body := f.decode(rec)

	offers := body["offers"].([]interface{})
	require.Len(t, offers, 1)
	offer := offers[0].(map[string]interface{})
	assert.Equal(t, "offer-1", offer["id"])

	itineraries := offer["itineraries"].([]interface{})
	itinerary := itineraries[0].(map[string]interface{})
	assert.Equal(t, "Direct", itinerary["stops_label"])

	duration := itinerary["duration"].(map[string]interface{})
	assert.Equal(t, "12h 0m", duration["formatted"])

	bounds := body["filter_bounds"].(map[string]interface{})
	assert.Equal(t, 450.0, bounds["max_price"])

	metadata := body["metadata"].(map[string]interface{})
	assert.Equal(t, float64(1), metadata["total_results"])
}

func TestSearchFlights_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", bytes.NewReader([]byte("{not json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", f.decode(rec)["code"])
}

func TestSearchFlights_DomainValidationError(t *testing.T) {
	f := newHandlerFixture(t)

	body := searchBody()
	body["origin"] = "bad"

	rec := f.do(http.MethodPost, "/api/v1/flights/search", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", f.decode(rec)["code"])
}

func TestSearchFlights_FilterValidationError(t *testing.T) {
	f := newHandlerFixture(t)

	body := searchBody()
	body["filters"] = map[string]interface{}{"price": -5}

	rec := f.do(http.MethodPost, "/api/v1/flights/search", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	decoded := f.decode(rec)
	assert.Equal(t, "validation_error", decoded["code"])
	details := decoded["details"].(map[string]interface{})
	assert.Contains(t, details, "filters.price")
}

func TestSearchFlights_ConnectivityError(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return(nil, domain.ErrConnectivity)

	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	decoded := f.decode(rec)
	assert.Equal(t, "connectivity_error", decoded["code"])
	assert.Equal(t, domain.ErrConnectivity.Error(), decoded["message"])
}

func TestSearchFlights_UpstreamErrorPassesThrough(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return(nil, domain.NewUpstreamError(429, "rate limit exceeded"))

	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	decoded := f.decode(rec)
	assert.Equal(t, "upstream_error", decoded["code"])
	assert.Equal(t, "rate limit exceeded", decoded["message"])
}

func TestSearchFlights_Timeout(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return(nil, context.DeadlineExceeded)

	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestSelectFlight_UnknownOffer(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return([]domain.FlightOffer{sampleOffer("offer-1", "450.00")}, nil)

	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/flights/offer-99/select", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	decoded := f.decode(rec)
	assert.Equal(t, "not_found", decoded["code"])
	assert.Equal(t, "This flight may no longer be available.", decoded["message"])
}

func TestSelectFlight_WithoutSearchRedirects(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/flights/offer-1/select", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search", rec.Header().Get(echo.HeaderLocation))
	decoded := f.decode(rec)
	assert.Equal(t, "/search", decoded["redirect"])
	assert.Equal(t, "No flight selected. Please search and select a flight.", decoded["message"])
}

func TestCheckout_MissingStateRedirectsWithMessage(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/bookings/checkout/offer-1", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search", rec.Header().Get(echo.HeaderLocation))
	decoded := f.decode(rec)
	assert.Equal(t, "No flight selected. Please search and select a flight.", decoded["message"])
}

func TestCheckout_MismatchRedirectsSilently(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return([]domain.FlightOffer{sampleOffer("offer-1", "450.00")}, nil)
	f.gateway.EXPECT().
		PriceOffer(gomock.Any(), "offer-1", "").
		Return(&domain.PricedOffer{FlightOffers: []domain.FlightOffer{sampleOffer("offer-1", "455.00")}}, nil)

	f.do(http.MethodPost, "/api/v1/flights/search", searchBody())
	rec := f.do(http.MethodPost, "/api/v1/flights/offer-1/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/bookings/checkout/offer-2", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search", rec.Header().Get(echo.HeaderLocation))
	decoded := f.decode(rec)
	assert.NotContains(t, decoded, "message", "mismatch redirects carry no message")
}

func TestConfirmation_MissingStateRedirectsHome(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/bookings/confirmation/bk-1", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	decoded := f.decode(rec)
	assert.Equal(t, "No booking information found.", decoded["message"])
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	f := newHandlerFixture(t)

	offer := sampleOffer("offer-1", "450.00")
	priced := &domain.PricedOffer{FlightOffers: []domain.FlightOffer{sampleOffer("offer-1", "455.00")}}
	confirmation := &domain.BookingConfirmation{
		ID:                "bk-1",
		AssociatedRecords: []domain.AssociatedRecord{{Reference: "ABC123"}},
		FlightOffers:      []domain.FlightOffer{offer},
		Travelers: []domain.Traveler{{
			ID:          "1",
			DateOfBirth: "1990-01-01",
			Name:        domain.TravelerName{FirstName: "Jane", LastName: "Doe"},
		}},
	}

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return([]domain.FlightOffer{offer}, nil)
	f.gateway.EXPECT().
		PriceOffer(gomock.Any(), "offer-1", "").
		Return(priced, nil)
	f.gateway.EXPECT().
		BookOffer(gomock.Any(), gomock.Any(), "").
		Return(confirmation, nil)

	// Search
	rec := f.do(http.MethodPost, "/api/v1/flights/search", searchBody())
	require.Equal(t, http.StatusOK, rec.Code)

	// Select
	rec = f.do(http.MethodPost, "/api/v1/flights/offer-1/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	selection := f.decode(rec)
	assert.Equal(t, "priced", selection["state"])

	// Checkout
	rec = f.do(http.MethodGet, "/api/v1/bookings/checkout/offer-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Book
	book := map[string]interface{}{
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
	rec = f.do(http.MethodPost, "/api/v1/bookings", book)
	require.Equal(t, http.StatusCreated, rec.Code)
	booked := f.decode(rec)
	assert.Equal(t, "bk-1", booked["id"])
	assert.Equal(t, "ABC123", booked["pnr"])

	// Confirmation readback
	rec = f.do(http.MethodGet, "/api/v1/bookings/confirmation/bk-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ABC123", f.decode(rec)["pnr"])
}

func TestBookFlight_InvalidTraveler(t *testing.T) {
	f := newHandlerFixture(t)

	book := map[string]interface{}{
		"travelers": []map[string]interface{}{{
			"id":   "1",
			"name": map[string]string{"firstName": "J", "lastName": "Doe"},
		}},
	}

	rec := f.do(http.MethodPost, "/api/v1/bookings", book)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	decoded := f.decode(rec)
	assert.Equal(t, "validation_error", decoded["code"])
	details := decoded["details"].(map[string]interface{})
	assert.Contains(t, details, "travelers[0].firstName")
}

func TestSignin_StoresSessionToken(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		Signin(gomock.Any(), domain.Credentials{Email: "jane@example.com", Password: "secret"}).
		Return(&domain.AuthSession{
			User:  domain.User{ID: "u-1", Name: "Jane", Email: "jane@example.com"},
			Token: "tok-abc",
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email":    "jane@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-abc", f.decode(rec)["token"])

	// The stored token is attached to subsequent upstream calls
	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "tok-abc").
		Return(nil, nil)

	rec = f.do(http.MethodPost, "/api/v1/flights/search", searchBody())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResetSession_ClearsFlowState(t *testing.T) {
	f := newHandlerFixture(t)

	f.gateway.EXPECT().
		SearchOffers(gomock.Any(), gomock.Any(), "").
		Return([]domain.FlightOffer{sampleOffer("offer-1", "450.00")}, nil)

	f.do(http.MethodPost, "/api/v1/flights/search", searchBody())

	rec := f.do(http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Selecting after reset behaves like no search ever happened
	rec = f.do(http.MethodPost, "/api/v1/flights/offer-1/select", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", f.decode(rec)["status"])
}
