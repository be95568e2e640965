// Package usecase provides the business logic for flight search and booking.
package usecase

import (
	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// ApplyFilters applies the given criteria to a list of offers.
// It returns a new slice containing only offers that match all criteria.
//
// Behavior:
//   - Returns the original slice if criteria is nil (no filtering)
//   - Empty stops/airlines sets pass every offer (no constraint)
//   - Input order is preserved; no offer is duplicated or reordered
//   - Does NOT mutate the original offers slice
//   - Idempotent: applying the same criteria twice yields the same set
func ApplyFilters(offers []domain.FlightOffer, criteria *domain.FilterCriteria) []domain.FlightOffer {
	if criteria == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if criteria.Matches(offer) {
			result = append(result, offer)
		}
	}
	return result
}
