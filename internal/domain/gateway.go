package domain

import "context"

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=domain

// SignupRequest is the payload for creating a provider account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the payload for signing in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the provider's account record.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthSession is the result of a successful signin.
type AuthSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// PricedOffer is the provider's pricing response: the confirmed offer(s) at
// their current price, same shape as search results.
type PricedOffer struct {
	FlightOffers []FlightOffer `json:"flightOffers"`
}

// ProviderGateway is the upstream flight provider API consumed by the gateway.
// Implementations attach the bearer token when it is non-empty and normalize
// provider errors per the error contract (see UpstreamError).
type ProviderGateway interface {
	// Signup creates a provider account.
	Signup(ctx context.Context, req SignupRequest) (*User, error)

	// Signin exchanges credentials for a token and user record.
	Signin(ctx context.Context, creds Credentials) (*AuthSession, error)

	// SearchOffers queries available flight offers for the criteria.
	SearchOffers(ctx context.Context, criteria SearchCriteria, token string) ([]FlightOffer, error)

	// PriceOffer confirms the current price of a previously listed offer.
	PriceOffer(ctx context.Context, offerID string, token string) (*PricedOffer, error)

	// BookOffer submits travelers against the session's priced offer and
	// returns the booking confirmation.
	BookOffer(ctx context.Context, travelers []Traveler, token string) (*BookingConfirmation, error)

	// GetBooking fetches a booking confirmation by id.
	GetBooking(ctx context.Context, bookingID string, token string) (*BookingConfirmation, error)

	// CancelBooking cancels a booking by id.
	CancelBooking(ctx context.Context, bookingID string, token string) error
}
