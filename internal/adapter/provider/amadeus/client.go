// Package amadeus implements the ProviderGateway against the remote flight
// provider API. It attaches bearer tokens, decodes offer payloads into domain
// entities, and normalizes provider errors into domain.UpstreamError per the
// provider error contract. It never retries: every failure is terminal for the
// user action that triggered it.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// Client is an HTTP client for the provider API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:4324/api") with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Signup implements domain.ProviderGateway.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Signin implements domain.ProviderGateway.
func (c *Client) Signin(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	var auth domain.AuthSession
	if err := c.do(ctx, http.MethodPost, "/auth/signin", nil, creds, "", &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// SearchOffers implements domain.ProviderGateway.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria, token string) ([]domain.FlightOffer, error) {
	query := url.Values{}
	query.Set("origin", criteria.Origin)
	query.Set("destination", criteria.Destination)
	query.Set("departureDate", criteria.DepartureDate)
	if criteria.ReturnDate != "" {
		query.Set("returnDate", criteria.ReturnDate)
	}
	query.Set("adults", strconv.Itoa(criteria.Adults))
	if criteria.Children > 0 {
		query.Set("children", strconv.Itoa(criteria.Children))
	}
	if criteria.TravelClass != "" {
		query.Set("travelClass", criteria.TravelClass)
	}

	var offers []domain.FlightOffer
	if err := c.do(ctx, http.MethodGet, "/flights/search", query, nil, token, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// PriceOffer implements domain.ProviderGateway.
func (c *Client) PriceOffer(ctx context.Context, offerID string, token string) (*domain.PricedOffer, error) {
	body := map[string]string{"flightOfferId": offerID}

	var priced domain.PricedOffer
	if err := c.do(ctx, http.MethodPost, "/flights/price", nil, body, token, &priced); err != nil {
		return nil, err
	}
	return &priced, nil
}

// BookOffer implements domain.ProviderGateway.
func (c *Client) BookOffer(ctx context.Context, travelers []domain.Traveler, token string) (*domain.BookingConfirmation, error) {
	body := map[string][]domain.Traveler{"travelers": travelers}

	var confirmation domain.BookingConfirmation
	if err := c.do(ctx, http.MethodPost, "/flights/book", nil, body, token, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// GetBooking implements domain.ProviderGateway.
func (c *Client) GetBooking(ctx context.Context, bookingID string, token string) (*domain.BookingConfirmation, error) {
	var confirmation domain.BookingConfirmation
	if err := c.do(ctx, http.MethodGet, "/flights/booking/"+url.PathEscape(bookingID), nil, nil, token, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// CancelBooking implements domain.ProviderGateway.
func (c *Client) CancelBooking(ctx context.Context, bookingID string, token string) error {
	return c.do(ctx, http.MethodDelete, "/flights/booking/"+url.PathEscape(bookingID), nil, nil, token, nil)
}

// do performs one request against the provider. A non-2xx response is
// normalized via normalizeError; a transport failure is remapped to the fixed
// connectivity error unless the context ended the request.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, token string, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return domain.ErrConnectivity
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var _ domain.ProviderGateway = (*Client)(nil)
