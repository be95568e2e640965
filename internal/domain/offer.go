// Package domain contains the core business entities and rules for the flight booking gateway.
// These entities mirror the provider's offer shape and are the foundation upon which
// filtering, pricing and booking are built.
package domain

// FlightOffer represents a priced flight itinerary proposal returned by the provider.
// One itinerary means a one-way trip; two itineraries mean a round trip
// (outbound first, inbound second).
type FlightOffer struct {
	// ID is the provider-assigned identifier; it is the identity key used for
	// selection and session handoff.
	ID string `json:"id"`

	// Price contains the offer-level pricing as decimal strings.
	Price Price `json:"price"`

	// Itineraries holds the outbound itinerary and, for round trips, the inbound one.
	Itineraries []Itinerary `json:"itineraries"`

	// TravelerPricings holds one fare record per traveler.
	TravelerPricings []TravelerPricing `json:"travelerPricings,omitempty"`
}

// Outbound returns the first itinerary. Offers always carry at least one.
func (o *FlightOffer) Outbound() Itinerary {
	return o.Itineraries[0]
}

// Inbound returns the return-leg itinerary, or nil for one-way offers.
func (o *FlightOffer) Inbound() *Itinerary {
	if len(o.Itineraries) < 2 {
		return nil
	}
	return &o.Itineraries[1]
}

// IsRoundTrip reports whether the offer has a return leg.
func (o *FlightOffer) IsRoundTrip() bool {
	return len(o.Itineraries) >= 2
}

// Price contains offer pricing. Amounts are decimal strings as sent by the
// provider; use TotalAmount for the parsed value.
type Price struct {
	// Total is the grand total amount, e.g. "450.00"
	Total string `json:"total"`

	// Base is the base fare amount before taxes and fees
	Base string `json:"base,omitempty"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Itinerary is one directional trip composed of ordered, non-empty segments.
type Itinerary struct {
	Segments []Segment `json:"segments"`
}

// FirstSegment returns the initial flown leg of the itinerary.
func (i Itinerary) FirstSegment() Segment {
	return i.Segments[0]
}

// LastSegment returns the final flown leg of the itinerary.
func (i Itinerary) LastSegment() Segment {
	return i.Segments[len(i.Segments)-1]
}

// Segment is a single flown leg between two airports on one carrier and flight number.
type Segment struct {
	// CarrierCode is the IATA airline code (e.g., "AA")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number (e.g., "100")
	Number string `json:"number"`

	// Departure is the origin endpoint of the leg
	Departure SegmentPoint `json:"departure"`

	// Arrival is the destination endpoint of the leg
	Arrival SegmentPoint `json:"arrival"`
}

// SegmentPoint is one endpoint of a segment.
type SegmentPoint struct {
	// IATACode is the IATA airport code (e.g., "JFK")
	IATACode string `json:"iataCode"`

	// At is the scheduled local time as an ISO 8601 string; a timezone offset
	// is not guaranteed to be present.
	At string `json:"at"`
}

// Traveler types used in traveler pricings.
const (
	TravelerTypeAdult = "ADULT"
	TravelerTypeChild = "CHILD"
)

// TravelerPricing is the per-traveler fare record attached to an offer.
type TravelerPricing struct {
	// TravelerID identifies the traveler within the offer ("1", "2", ...)
	TravelerID string `json:"travelerId"`

	// TravelerType is ADULT or CHILD
	TravelerType string `json:"travelerType"`

	// FareOption is the fare option code (e.g., "STANDARD")
	FareOption string `json:"fareOption,omitempty"`

	// Price is the per-traveler price
	Price Price `json:"price"`

	// FareDetailsBySegment holds per-segment cabin and baggage detail
	FareDetailsBySegment []FareDetails `json:"fareDetailsBySegment,omitempty"`
}

// FareDetails describes the fare on a single segment.
type FareDetails struct {
	// SegmentID references the segment this fare applies to
	SegmentID string `json:"segmentId,omitempty"`

	// Cabin is the cabin class (e.g., "ECONOMY")
	Cabin string `json:"cabin"`

	// IncludedCheckedBags is the checked baggage allowance
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

// CheckedBags is a baggage allowance expressed either as a weight or a piece count.
type CheckedBags struct {
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

// CountTravelers returns the number of ADULT and CHILD traveler pricings on the offer.
func (o *FlightOffer) CountTravelers() (adults, children int) {
	for _, tp := range o.TravelerPricings {
		switch tp.TravelerType {
		case TravelerTypeAdult:
			adults++
		case TravelerTypeChild:
			children++
		}
	}
	return adults, children
}
