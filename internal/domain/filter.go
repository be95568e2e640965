package domain

// Stop-count buckets selectable in FilterCriteria.
const (
	// StopsDirect selects non-stop itineraries
	StopsDirect = 0

	// StopsOne selects itineraries with exactly one stop
	StopsOne = 1

	// StopsTwoPlus selects itineraries with two or more stops
	StopsTwoPlus = 2
)

// FilterCriteria holds the constraints applied to a fetched offer set.
// Empty Stops/Airlines mean "no constraint", never "exclude all".
type FilterCriteria struct {
	// Price is the inclusive upper bound on the offer total
	Price float64 `json:"price"`

	// Stops is a set of stop-count buckets (0, 1, 2 where 2 means "2 or more")
	Stops []int `json:"stops,omitempty"`

	// Airlines is an allow-list of carrier codes
	Airlines []string `json:"airlines,omitempty"`
}

// Matches reports whether an offer passes all three criteria. The stop bucket
// and airline checks look at the outbound itinerary only; a matching outbound
// carrier qualifies the whole offer including its return leg.
func (fc *FilterCriteria) Matches(offer FlightOffer) bool {
	if fc == nil {
		return true
	}

	if offer.Price.TotalAmount() > fc.Price {
		return false
	}

	if len(fc.Stops) > 0 && !fc.matchesStops(offer) {
		return false
	}

	if len(fc.Airlines) > 0 && !fc.matchesAirlines(offer) {
		return false
	}

	return true
}

// matchesStops checks the outbound stop count against the selected buckets.
func (fc *FilterCriteria) matchesStops(offer FlightOffer) bool {
	stops := StopCount(offer.Outbound())
	for _, bucket := range fc.Stops {
		switch bucket {
		case StopsDirect:
			if stops == 0 {
				return true
			}
		case StopsOne:
			if stops == 1 {
				return true
			}
		case StopsTwoPlus:
			if stops >= 2 {
				return true
			}
		}
	}
	return false
}

// matchesAirlines checks whether any outbound segment is operated by an
// allow-listed carrier.
func (fc *FilterCriteria) matchesAirlines(offer FlightOffer) bool {
	allowed := make(map[string]struct{}, len(fc.Airlines))
	for _, code := range fc.Airlines {
		allowed[code] = struct{}{}
	}
	for _, seg := range offer.Outbound().Segments {
		if _, ok := allowed[seg.CarrierCode]; ok {
			return true
		}
	}
	return false
}
