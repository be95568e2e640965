package domain

import (
	"fmt"
	"time"
)

// OfferState tracks a selected offer through the booking flow.
type OfferState string

// Booking flow states. A search result starts Listed; pricing moves it to
// Priced, a successful booking submission to Booked, and reading back the
// stored confirmation to Confirmed.
const (
	StateListed    OfferState = "listed"
	StatePriced    OfferState = "priced"
	StateBooked    OfferState = "booked"
	StateConfirmed OfferState = "confirmed"
)

// IsValid checks if the state is a known value.
func (s OfferState) IsValid() bool {
	switch s {
	case StateListed, StatePriced, StateBooked, StateConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the flow allows moving to the next state.
// Transitions only move forward, one step at a time.
func (s OfferState) CanTransitionTo(next OfferState) bool {
	switch s {
	case StateListed:
		return next == StatePriced
	case StatePriced:
		return next == StateBooked
	case StateBooked:
		return next == StateConfirmed
	default:
		return false
	}
}

// Traveler is a passenger record submitted with a booking.
type Traveler struct {
	// ID identifies the traveler within the booking ("1", "2", ...)
	ID string `json:"id"`

	// DateOfBirth is the traveler's birth date in YYYY-MM-DD format
	DateOfBirth string `json:"dateOfBirth"`

	// Name holds the traveler's legal name
	Name TravelerName `json:"name"`

	// Gender is the traveler's gender as required by the provider
	Gender string `json:"gender,omitempty"`

	// Contact holds email and phone contact details
	Contact TravelerContact `json:"contact"`

	// Documents holds identity documents, typically one passport
	Documents []TravelerDocument `json:"documents,omitempty"`
}

// TravelerName is a traveler's legal name.
type TravelerName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TravelerContact holds a traveler's contact details.
type TravelerContact struct {
	EmailAddress string          `json:"emailAddress"`
	Phones       []TravelerPhone `json:"phones,omitempty"`
}

// TravelerPhone is a phone contact entry.
type TravelerPhone struct {
	DeviceType         string `json:"deviceType,omitempty"`
	CountryCallingCode string `json:"countryCallingCode,omitempty"`
	Number             string `json:"number"`
}

// TravelerDocument is an identity document attached to a traveler.
type TravelerDocument struct {
	DocumentType     string `json:"documentType"`
	Number           string `json:"number"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
	IssuanceDate     string `json:"issuanceDate,omitempty"`
	IssuanceCountry  string `json:"issuanceCountry,omitempty"`
	ValidityCountry  string `json:"validityCountry,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	BirthPlace       string `json:"birthPlace,omitempty"`
	IssuanceLocation string `json:"issuanceLocation,omitempty"`
	Holder           bool   `json:"holder,omitempty"`
}

// BookingConfirmation is the provider's response to a successful booking.
type BookingConfirmation struct {
	// ID is the provider booking identifier used for lookup and cancellation
	ID string `json:"id"`

	// AssociatedRecords carries the airline record locators; the first entry's
	// reference is the PNR shown to the traveler
	AssociatedRecords []AssociatedRecord `json:"associatedRecords"`

	// FlightOffers echoes the booked offer(s)
	FlightOffers []FlightOffer `json:"flightOffers"`

	// Travelers echoes the booked traveler records
	Travelers []Traveler `json:"travelers"`
}

// AssociatedRecord is an airline record locator entry.
type AssociatedRecord struct {
	Reference        string `json:"reference"`
	CreationDate     string `json:"creationDate,omitempty"`
	OriginSystemCode string `json:"originSystemCode,omitempty"`
}

// PNR returns the booking reference code, or "" when the provider sent none.
func (b *BookingConfirmation) PNR() string {
	if len(b.AssociatedRecords) == 0 {
		return ""
	}
	return b.AssociatedRecords[0].Reference
}

// ChildMaxAge is the exclusive age bound for CHILD travelers at booking time.
const ChildMaxAge = 17

// ValidateTravelerAges checks the child-age rule against the offer's traveler
// pricings: travelers beyond the adult count are child fares and must be under
// ChildMaxAge on the reference date. Traveler order follows the pricing order
// (adults first).
func ValidateTravelerAges(travelers []Traveler, adults int, ref time.Time) error {
	for i, tr := range travelers {
		if i < adults {
			continue
		}
		dob, err := time.Parse("2006-01-02", tr.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: traveler %d has an invalid dateOfBirth %q", ErrInvalidRequest, i+1, tr.DateOfBirth)
		}
		if ageAt(dob, ref) >= ChildMaxAge {
			return fmt.Errorf("%w: child passenger must be under %d years old", ErrInvalidRequest, ChildMaxAge)
		}
	}
	return nil
}

// ageAt computes whole years between birth and ref, counting a year only once
// the birthday has passed.
func ageAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}
