// Package mock provides test doubles for the booking gateway.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// Gateway is a configurable mock implementation of domain.ProviderGateway.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and upstream failures.
type Gateway struct {
	offers       []domain.FlightOffer
	priced       *domain.PricedOffer
	confirmation *domain.BookingConfirmation
	session      *domain.AuthSession
	err          error
	delay        time.Duration

	callCounts map[string]int
	lastToken  string
	mu         sync.Mutex
}

// NewGateway creates a new mock gateway. Configure it with the builder methods.
func NewGateway() *Gateway {
	return &Gateway{
		callCounts: make(map[string]int),
	}
}

// WithOffers configures the gateway to return the given offers from SearchOffers.
func (g *Gateway) WithOffers(offers []domain.FlightOffer) *Gateway {
	g.offers = offers
	return g
}

// WithPricedOffer configures the pricing response.
func (g *Gateway) WithPricedOffer(priced *domain.PricedOffer) *Gateway {
	g.priced = priced
	return g
}

// WithConfirmation configures the booking confirmation returned by BookOffer
// and GetBooking.
func (g *Gateway) WithConfirmation(conf *domain.BookingConfirmation) *Gateway {
	g.confirmation = conf
	return g
}

// WithAuthSession configures the signin response.
func (g *Gateway) WithAuthSession(session *domain.AuthSession) *Gateway {
	g.session = session
	return g
}

// WithError configures every call to return the given error.
func (g *Gateway) WithError(err error) *Gateway {
	g.err = err
	return g
}

// WithDelay configures the gateway to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (g *Gateway) WithDelay(d time.Duration) *Gateway {
	g.delay = d
	return g
}

// CallCount returns how many times the named operation was invoked.
func (g *Gateway) CallCount(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCounts[op]
}

// LastToken returns the token passed on the most recent token-bearing call.
func (g *Gateway) LastToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastToken
}

// Reset clears call counts and the recorded token.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callCounts = make(map[string]int)
	g.lastToken = ""
}

func (g *Gateway) record(op, token string) {
	g.mu.Lock()
	g.callCounts[op]++
	g.lastToken = token
	g.mu.Unlock()
}

// wait applies the configured delay, honoring context cancellation.
func (g *Gateway) wait(ctx context.Context) error {
	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.delay):
		}
	}
	return ctx.Err()
}

// Signup implements domain.ProviderGateway.
func (g *Gateway) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	g.record("Signup", "")
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	return &domain.User{ID: "u-1", Name: req.Name, Email: req.Email}, nil
}

// Signin implements domain.ProviderGateway.
func (g *Gateway) Signin(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	g.record("Signin", "")
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.session != nil {
		return g.session, nil
	}
	return &domain.AuthSession{
		User:  domain.User{ID: "u-1", Email: creds.Email},
		Token: "test-token",
	}, nil
}

// SearchOffers implements domain.ProviderGateway.
func (g *Gateway) SearchOffers(ctx context.Context, criteria domain.SearchCriteria, token string) ([]domain.FlightOffer, error) {
	g.record("SearchOffers", token)
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.offers, nil
}

// PriceOffer implements domain.ProviderGateway.
func (g *Gateway) PriceOffer(ctx context.Context, offerID string, token string) (*domain.PricedOffer, error) {
	g.record("PriceOffer", token)
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.priced != nil {
		return g.priced, nil
	}
	// Default: confirm whichever configured offer matches at its listed price.
	for _, offer := range g.offers {
		if offer.ID == offerID {
			return &domain.PricedOffer{FlightOffers: []domain.FlightOffer{offer}}, nil
		}
	}
	return &domain.PricedOffer{}, nil
}

// BookOffer implements domain.ProviderGateway.
func (g *Gateway) BookOffer(ctx context.Context, travelers []domain.Traveler, token string) (*domain.BookingConfirmation, error) {
	g.record("BookOffer", token)
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.confirmation != nil {
		return g.confirmation, nil
	}
	return &domain.BookingConfirmation{
		ID:                "bk-1",
		AssociatedRecords: []domain.AssociatedRecord{{Reference: "ABC123"}},
		Travelers:         travelers,
	}, nil
}

// GetBooking implements domain.ProviderGateway.
func (g *Gateway) GetBooking(ctx context.Context, bookingID string, token string) (*domain.BookingConfirmation, error) {
	g.record("GetBooking", token)
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}
	if g.confirmation != nil {
		return g.confirmation, nil
	}
	return &domain.BookingConfirmation{ID: bookingID}, nil
}

// CancelBooking implements domain.ProviderGateway.
func (g *Gateway) CancelBooking(ctx context.Context, bookingID string, token string) error {
	g.record("CancelBooking", token)
	if err := g.wait(ctx); err != nil {
		return err
	}
	return g.err
}

// Ensure Gateway implements domain.ProviderGateway at compile time.
var _ domain.ProviderGateway = (*Gateway)(nil)

// SampleOffers returns a slice of sample one-way offers for testing.
// Offers are priced in ascending 50.00 steps starting at 400.00 and rotate
// through a small set of carriers.
func SampleOffers(count int) []domain.FlightOffer {
	carriers := []string{"BA", "AF", "DL", "LH"}
	offers := make([]domain.FlightOffer, count)

	for i := 0; i < count; i++ {
		carrier := carriers[i%len(carriers)]
		departure := time.Date(2026, 9, 15, 8+i, 0, 0, 0, time.UTC)
		arrival := departure.Add(7*time.Hour + 30*time.Minute)

		offers[i] = domain.FlightOffer{
			ID: fmt.Sprintf("offer-%d", i+1),
			Price: domain.Price{
				Total:    fmt.Sprintf("%.2f", 400.0+float64(i)*50.0),
				Currency: "USD",
			},
			Itineraries: []domain.Itinerary{{
				Segments: []domain.Segment{{
					CarrierCode: carrier,
					Number:      fmt.Sprintf("%d", 100+i),
					Departure: domain.SegmentPoint{
						IATACode: "JFK",
						At:       departure.Format("2006-01-02T15:04:05"),
					},
					Arrival: domain.SegmentPoint{
						IATACode: "LHR",
						At:       arrival.Format("2006-01-02T15:04:05"),
					},
				}},
			}},
			TravelerPricings: []domain.TravelerPricing{
				{TravelerID: "1", TravelerType: domain.TravelerTypeAdult},
			},
		}
	}

	return offers
}
