package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a flight search request.
// A non-empty ReturnDate makes the search a round trip.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format; empty for one-way trips
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults"`

	// Children is the number of child passengers (0-8)
	Children int `json:"children,omitempty"`

	// TravelClass is the requested cabin (ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
	TravelClass string `json:"travelClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validTravelClasses defines the cabin classes the provider accepts.
var validTravelClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	departure, err := parseSearchDate("departureDate", s.DepartureDate)
	if err != nil {
		return err
	}

	if s.ReturnDate != "" {
		ret, err := parseSearchDate("returnDate", s.ReturnDate)
		if err != nil {
			return err
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	if s.Children < 0 {
		return fmt.Errorf("%w: children cannot be negative", ErrInvalidRequest)
	}
	if s.Children > 8 {
		return fmt.Errorf("%w: children cannot exceed 8", ErrInvalidRequest)
	}

	if s.TravelClass != "" && !validTravelClasses[s.TravelClass] {
		return fmt.Errorf("%w: travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q",
			ErrInvalidRequest, s.TravelClass)
	}

	return nil
}

// parseSearchDate validates the YYYY-MM-DD shape and parses the date.
func parseSearchDate(field, value string) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TravelClass == "" {
		s.TravelClass = "ECONOMY"
	}
}

// IsRoundTrip reports whether the criteria requests a return leg.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != ""
}
