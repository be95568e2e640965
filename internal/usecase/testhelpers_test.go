package usecase

import (
	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// testItinerary builds an itinerary with one segment per carrier code.
func testItinerary(departureAt, arrivalAt string, carriers ...string) domain.Itinerary {
	segments := make([]domain.Segment, len(carriers))
	for i, carrier := range carriers {
		segments[i] = domain.Segment{
			CarrierCode: carrier,
			Number:      "100",
			Departure:   domain.SegmentPoint{IATACode: "JFK", At: departureAt},
			Arrival:     domain.SegmentPoint{IATACode: "LHR", At: arrivalAt},
		}
	}
	return domain.Itinerary{Segments: segments}
}

// testOffer builds a one-way offer with the given total and outbound carriers.
func testOffer(id, total string, carriers ...string) domain.FlightOffer {
	return domain.FlightOffer{
		ID:          id,
		Price:       domain.Price{Total: total, Currency: "USD"},
		Itineraries: []domain.Itinerary{testItinerary("2026-09-15T08:00", "2026-09-15T14:00", carriers...)},
	}
}

// testCriteria returns valid search criteria.
func testCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}
}
