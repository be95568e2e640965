package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
)

// BookingFlowUseCase drives a selected offer through the
// Listed -> Priced -> Booked -> Confirmed flow. Intermediate state lives in
// the session scratch store under fixed keys; every step that reads state back
// identity-checks the stored offer against the id in the request.
type BookingFlowUseCase interface {
	// Select resolves an offer from the session's stored result set, prices it
	// upstream, and stores the selection and pricing for checkout.
	Select(ctx context.Context, sessionID, offerID, token string) (*Selection, error)

	// Checkout loads the stored selection for the booking page. Missing state
	// yields ErrStateMissing; an id mismatch yields ErrStateMismatch.
	Checkout(ctx context.Context, sessionID, flightID string) (*Selection, error)

	// Book validates travelers against the selected offer, submits the booking
	// upstream, and stores the confirmation.
	Book(ctx context.Context, sessionID string, travelers []domain.Traveler, token string) (*domain.BookingConfirmation, error)

	// Confirmation loads the stored booking confirmation. Missing state yields
	// ErrStateMissing; an id mismatch yields ErrStateMismatch.
	Confirmation(ctx context.Context, sessionID, bookingID string) (*domain.BookingConfirmation, error)

	// Lookup fetches a booking from the provider by id, bypassing the session.
	Lookup(ctx context.Context, bookingID, token string) (*domain.BookingConfirmation, error)

	// Cancel cancels a booking at the provider.
	Cancel(ctx context.Context, bookingID, token string) error

	// Reset clears all booking-flow scratch keys for the session.
	Reset(ctx context.Context, sessionID string) error
}

// Selection is a selected offer together with its pricing response and the
// flow state it has reached.
type Selection struct {
	// Offer is the offer as it appeared in the search results
	Offer domain.FlightOffer `json:"offer"`

	// Priced is the provider's pricing response for the offer
	Priced domain.PricedOffer `json:"priced"`

	// State is the booking-flow state of the selection
	State domain.OfferState `json:"state"`
}

// bookingFlowUseCase implements BookingFlowUseCase.
type bookingFlowUseCase struct {
	gateway domain.ProviderGateway
	store   session.Store
	clock   timeutil.Clock
}

// NewBookingFlowUseCase creates a BookingFlowUseCase. A nil clock defaults to
// the system clock.
func NewBookingFlowUseCase(gateway domain.ProviderGateway, store session.Store, clock timeutil.Clock) BookingFlowUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &bookingFlowUseCase{
		gateway: gateway,
		store:   store,
		clock:   clock,
	}
}

// Select implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Select(ctx context.Context, sessionID, offerID, token string) (*Selection, error) {
	var results []domain.FlightOffer
	if err := uc.store.Get(ctx, sessionID, session.KeySearchResults, &results); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("%w: no search results in session", domain.ErrStateMissing)
		}
		return nil, err
	}

	offer, ok := findOffer(results, offerID)
	if !ok {
		return nil, fmt.Errorf("%w: offer %q", domain.ErrOfferNotFound, offerID)
	}

	priced, err := uc.gateway.PriceOffer(ctx, offerID, token)
	if err != nil {
		// Pricing failure leaves prior session state untouched.
		return nil, err
	}

	if err := uc.store.Set(ctx, sessionID, session.KeySelectedFlight, offer); err != nil {
		return nil, fmt.Errorf("store selected flight: %w", err)
	}
	if err := uc.store.Set(ctx, sessionID, session.KeyPricedOffer, priced); err != nil {
		return nil, fmt.Errorf("store priced offer: %w", err)
	}

	return &Selection{
		Offer:  offer,
		Priced: *priced,
		State:  domain.StatePriced,
	}, nil
}

// Checkout implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Checkout(ctx context.Context, sessionID, flightID string) (*Selection, error) {
	offer, priced, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if offer.ID != flightID {
		return nil, fmt.Errorf("%w: selected flight %q, requested %q", domain.ErrStateMismatch, offer.ID, flightID)
	}

	return &Selection{
		Offer:  *offer,
		Priced: *priced,
		State:  domain.StatePriced,
	}, nil
}

// Book implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Book(ctx context.Context, sessionID string, travelers []domain.Traveler, token string) (*domain.BookingConfirmation, error) {
	offer, _, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	adults, children := offer.CountTravelers()
	if expected := adults + children; expected > 0 && len(travelers) != expected {
		return nil, fmt.Errorf("%w: expected %d traveler(s), got %d", domain.ErrInvalidRequest, expected, len(travelers))
	}
	if err := domain.ValidateTravelerAges(travelers, adults, uc.clock.Now()); err != nil {
		return nil, err
	}

	if !domain.StatePriced.CanTransitionTo(domain.StateBooked) {
		return nil, fmt.Errorf("%w: cannot book from state %q", domain.ErrStateMismatch, domain.StatePriced)
	}

	confirmation, err := uc.gateway.BookOffer(ctx, travelers, token)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, sessionID, session.KeyBookingConfirmation, confirmation); err != nil {
		return nil, fmt.Errorf("store booking confirmation: %w", err)
	}

	return confirmation, nil
}

// Confirmation implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Confirmation(ctx context.Context, sessionID, bookingID string) (*domain.BookingConfirmation, error) {
	var confirmation domain.BookingConfirmation
	if err := uc.store.Get(ctx, sessionID, session.KeyBookingConfirmation, &confirmation); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("%w: no booking confirmation in session", domain.ErrStateMissing)
		}
		return nil, err
	}

	if confirmation.ID != bookingID {
		return nil, fmt.Errorf("%w: stored booking %q, requested %q", domain.ErrStateMismatch, confirmation.ID, bookingID)
	}

	return &confirmation, nil
}

// Lookup implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Lookup(ctx context.Context, bookingID, token string) (*domain.BookingConfirmation, error) {
	return uc.gateway.GetBooking(ctx, bookingID, token)
}

// Cancel implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Cancel(ctx context.Context, bookingID, token string) error {
	return uc.gateway.CancelBooking(ctx, bookingID, token)
}

// Reset implements BookingFlowUseCase.
func (uc *bookingFlowUseCase) Reset(ctx context.Context, sessionID string) error {
	keys := []string{
		session.KeySearchParams,
		session.KeySelectedFlight,
		session.KeyPricedOffer,
		session.KeyBookingConfirmation,
		session.KeySearchResults,
	}
	for _, key := range keys {
		if err := uc.store.Delete(ctx, sessionID, key); err != nil {
			return fmt.Errorf("clear session key %q: %w", key, err)
		}
	}
	return nil
}

// loadSelection reads the selected flight and its pricing from the session.
func (uc *bookingFlowUseCase) loadSelection(ctx context.Context, sessionID string) (*domain.FlightOffer, *domain.PricedOffer, error) {
	var offer domain.FlightOffer
	if err := uc.store.Get(ctx, sessionID, session.KeySelectedFlight, &offer); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: no flight selected", domain.ErrStateMissing)
		}
		return nil, nil, err
	}

	var priced domain.PricedOffer
	if err := uc.store.Get(ctx, sessionID, session.KeyPricedOffer, &priced); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: no priced offer", domain.ErrStateMissing)
		}
		return nil, nil, err
	}

	return &offer, &priced, nil
}

// findOffer locates an offer by id.
func findOffer(offers []domain.FlightOffer, id string) (domain.FlightOffer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.FlightOffer{}, false
}

// Ensure bookingFlowUseCase implements BookingFlowUseCase at compile time.
var _ BookingFlowUseCase = (*bookingFlowUseCase)(nil)
