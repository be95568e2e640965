package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
)

// FlightSearchUseCase defines the search operation exposed by the gateway.
type FlightSearchUseCase interface {
	// Search queries the provider, snapshots the filter bounds from the
	// unfiltered result set, applies the criteria, and stores the criteria and
	// unfiltered results in the session for later offer selection.
	Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria, filters *domain.FilterCriteria, token string) (*SearchResult, error)
}

// SearchResult is the outcome of a search: the visible (filtered) offers plus
// the bounds snapshot the filter UI is built from.
type SearchResult struct {
	// Criteria echoes the search parameters after defaulting
	Criteria domain.SearchCriteria

	// Offers is the filtered offer list, provider order preserved
	Offers []domain.FlightOffer

	// Bounds is derived from the unfiltered set at search time and stays
	// frozen for the lifetime of this result set
	Bounds FilterBounds

	// Metadata describes the search execution
	Metadata SearchMetadata
}

// FilterBounds is the frozen per-result-set snapshot the filter controls use.
type FilterBounds struct {
	// MaxPrice is the ceiling of the highest offer total, or DefaultMaxPrice
	// for an empty result set
	MaxPrice float64 `json:"maxPrice"`

	// Airlines lists the outbound-leg carriers present in the result set,
	// first-seen order, with display names resolved
	Airlines []AirlineOption `json:"airlines"`
}

// AirlineOption is one selectable airline in the filter list.
type AirlineOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SearchMetadata describes the search execution.
type SearchMetadata struct {
	// TotalResults is the size of the unfiltered result set
	TotalResults int `json:"totalResults"`

	// MatchedResults is the size of the filtered result set
	MatchedResults int `json:"matchedResults"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	gateway domain.ProviderGateway
	store   session.Store
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by the given
// provider gateway and session store.
func NewFlightSearchUseCase(gateway domain.ProviderGateway, store session.Store) FlightSearchUseCase {
	return &flightSearchUseCase{
		gateway: gateway,
		store:   store,
	}
}

// Search implements FlightSearchUseCase.
func (uc *flightSearchUseCase) Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria, filters *domain.FilterCriteria, token string) (*SearchResult, error) {
	start := time.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	offers, err := uc.gateway.SearchOffers(ctx, criteria, token)
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []domain.FlightOffer{}
	}

	// Bounds come from the unfiltered set and are never recomputed as the
	// criteria change.
	bounds := snapshotBounds(offers)

	if err := uc.store.Set(ctx, sessionID, session.KeySearchParams, criteria); err != nil {
		return nil, fmt.Errorf("store search params: %w", err)
	}
	if err := uc.store.Set(ctx, sessionID, session.KeySearchResults, offers); err != nil {
		return nil, fmt.Errorf("store search results: %w", err)
	}

	filtered := ApplyFilters(offers, filters)

	return &SearchResult{
		Criteria: criteria,
		Offers:   filtered,
		Bounds:   bounds,
		Metadata: SearchMetadata{
			TotalResults:   len(offers),
			MatchedResults: len(filtered),
			SearchTimeMs:   time.Since(start).Milliseconds(),
		},
	}, nil
}

// snapshotBounds computes the filter bounds from an unfiltered result set.
func snapshotBounds(offers []domain.FlightOffer) FilterBounds {
	maxPrice := domain.MaxPrice(offers)
	if len(offers) == 0 {
		maxPrice = domain.DefaultMaxPrice
	}

	codes := domain.DistinctAirlines(offers)
	airlines := make([]AirlineOption, 0, len(codes))
	for _, code := range codes {
		airlines = append(airlines, AirlineOption{
			Code: code,
			Name: domain.AirlineName(code),
		})
	}

	return FilterBounds{
		MaxPrice: maxPrice,
		Airlines: airlines,
	}
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
