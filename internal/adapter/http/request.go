// Package http provides the HTTP handler layer for the booking gateway API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults"`

	// Children is the number of child passengers (0-8, optional)
	Children int `json:"children,omitempty"`

	// TravelClass is the requested cabin (optional)
	TravelClass string `json:"travelClass,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"price": 800, "stops": [0, 1], "airlines": ["BA", "AA"]}
type FilterDTO struct {
	// Price is the inclusive upper bound on the offer total; omitted means no cap
	Price *float64 `json:"price,omitempty" example:"800"`

	// Stops selects stop-count buckets: 0 = direct, 1 = one stop, 2 = two or more
	Stops []int `json:"stops,omitempty" example:"0,1"`

	// Airlines is an allow-list of carrier codes
	Airlines []string `json:"airlines,omitempty" example:"BA,AA"`
}

// BookFlightRequest represents the request body for booking submission.
type BookFlightRequest struct {
	// Travelers holds one passenger record per traveler on the priced offer
	Travelers []domain.Traveler `json:"travelers"`
}

// Validation regex patterns.
var (
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the filter block; the search criteria themselves are
// validated by the domain (SearchCriteria.Validate).
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Filters != nil {
		if r.Filters.Price != nil && *r.Filters.Price < 0 {
			errs.Add("filters.price", "price cannot be negative")
		}
		for _, bucket := range r.Filters.Stops {
			if bucket < domain.StopsDirect || bucket > domain.StopsTwoPlus {
				errs.Add("filters.stops", "stop buckets must be 0, 1 or 2")
				break
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks each traveler record for the client-side form rules:
// required fields, minimum lengths and the email pattern. The child-age rule
// needs the selected offer and is enforced in the booking use case.
func (r *BookFlightRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Travelers) == 0 {
		errs.Add("travelers", "at least one traveler is required")
		return errs
	}

	for i, tr := range r.Travelers {
		validateTraveler(errs, i, tr)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateTraveler accumulates field errors for one traveler.
func validateTraveler(errs *ValidationErrors, i int, tr domain.Traveler) {
	field := func(name string) string {
		return travelerField(i, name)
	}

	if len(tr.Name.FirstName) < 2 {
		errs.Add(field("firstName"), "first name must be at least 2 characters")
	}
	if len(tr.Name.LastName) < 2 {
		errs.Add(field("lastName"), "last name must be at least 2 characters")
	}

	if tr.DateOfBirth == "" {
		errs.Add(field("dateOfBirth"), "date of birth is required")
	} else if !isoDatePattern.MatchString(tr.DateOfBirth) {
		errs.Add(field("dateOfBirth"), "date of birth must be in YYYY-MM-DD format")
	}

	if tr.Contact.EmailAddress == "" {
		errs.Add(field("email"), "email is required")
	} else if !emailPattern.MatchString(tr.Contact.EmailAddress) {
		errs.Add(field("email"), "invalid email address")
	}

	if len(tr.Contact.Phones) == 0 {
		errs.Add(field("phone"), "phone number is required")
	} else {
		number := tr.Contact.Phones[0].Number
		if len(number) < 10 || !digitsPattern.MatchString(number) {
			errs.Add(field("phone"), "phone number must be at least 10 digits")
		}
	}

	if len(tr.Documents) == 0 {
		errs.Add(field("passportNumber"), "passport number is required")
		return
	}
	doc := tr.Documents[0]
	if len(doc.Number) < 5 {
		errs.Add(field("passportNumber"), "passport number must be at least 5 characters")
	}
	if doc.ExpiryDate == "" {
		errs.Add(field("passportExpiry"), "passport expiry date is required")
	}
	if doc.IssuanceCountry == "" {
		errs.Add(field("passportCountry"), "passport country is required")
	}
}

// travelerField names a traveler field for validation details, e.g.
// "travelers[0].firstName".
func travelerField(i int, name string) string {
	return fmt.Sprintf("travelers[%d].%s", i, name)
}

// ToDomainCriteria converts the request to domain search criteria.
func ToDomainCriteria(r *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		Children:      r.Children,
		TravelClass:   r.TravelClass,
	}
}

// ToFilterCriteria converts the optional filter block to domain criteria.
// Returns nil when no filters were requested. An omitted price means no cap.
func ToFilterCriteria(r *SearchFlightsRequest) *domain.FilterCriteria {
	if r.Filters == nil {
		return nil
	}

	price := noPriceCap
	if r.Filters.Price != nil {
		price = *r.Filters.Price
	}

	return &domain.FilterCriteria{
		Price:    price,
		Stops:    r.Filters.Stops,
		Airlines: r.Filters.Airlines,
	}
}

// noPriceCap passes every offer through the price predicate.
const noPriceCap float64 = 1 << 52
