// Package session provides the transient key-value scratch store used to hand
// state between steps of the booking flow. Values are JSON-serialized and
// expire after a configurable TTL.
package session

import (
	"context"
	"errors"
)

// Scratch keys used by the booking flow. The four handoff keys match the
// client contract exactly; the remaining keys are gateway-internal.
const (
	// KeySearchParams holds the last submitted search criteria.
	KeySearchParams = "flightSearchParams"

	// KeySelectedFlight holds the offer the user selected from the results.
	KeySelectedFlight = "selectedFlight"

	// KeyPricedOffer holds the pricing response for the selected offer.
	KeyPricedOffer = "pricedOffer"

	// KeyBookingConfirmation holds the booking response after submission.
	KeyBookingConfirmation = "bookingConfirmation"

	// KeySearchResults holds the unfiltered result set of the last search so
	// selection can resolve offers by id.
	KeySearchResults = "searchResults"

	// KeyToken holds the bearer token issued at signin.
	KeyToken = "token"

	// KeyUser holds the signed-in user record.
	KeyUser = "user"
)

// ErrNotFound is returned when a key is absent or its entry has expired.
var ErrNotFound = errors.New("session key not found")

// Store is a per-session key-value store with JSON values and per-entry TTL.
type Store interface {
	// Get unmarshals the value stored under (sessionID, key) into dest.
	// Returns ErrNotFound when the key is absent or expired.
	Get(ctx context.Context, sessionID, key string, dest any) error

	// Set marshals value and stores it under (sessionID, key), resetting the TTL.
	Set(ctx context.Context, sessionID, key string, value any) error

	// Delete removes the value under (sessionID, key). Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, sessionID, key string) error
}
