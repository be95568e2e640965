package http

import (
	"github.com/samber/lo"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/usecase"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	FilterBounds   FilterBoundsDTO   `json:"filter_bounds"`
	Metadata       MetadataDTO       `json:"metadata"`
	Offers         []OfferDTO        `json:"offers"`
}

// SearchCriteriaDTO echoes the search parameters after defaulting.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	TravelClass   string `json:"travel_class"`
}

// FilterBoundsDTO is the frozen filter-control snapshot for this result set:
// the price slider ceiling and the selectable airlines. It is computed from
// the unfiltered results and does not change as filters are applied.
type FilterBoundsDTO struct {
	MaxPrice float64      `json:"max_price"`
	Airlines []AirlineDTO `json:"airlines"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults   int   `json:"total_results"`
	MatchedResults int   `json:"matched_results"`
	SearchTimeMs   int64 `json:"search_time_ms"`
}

// OfferDTO is the data transfer object for a flight offer.
type OfferDTO struct {
	ID          string         `json:"id"`
	Price       PriceDTO       `json:"price"`
	Itineraries []ItineraryDTO `json:"itineraries"`
}

// PriceDTO represents price information with the parsed total.
type PriceDTO struct {
	Total    string  `json:"total"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ItineraryDTO is one directional trip with its derived display fields.
type ItineraryDTO struct {
	Segments   []SegmentDTO `json:"segments"`
	Duration   DurationDTO  `json:"duration"`
	Stops      int          `json:"stops"`
	StopsLabel string       `json:"stops_label"`
}

// SegmentDTO is a single flown leg.
type SegmentDTO struct {
	Airline      AirlineDTO     `json:"airline"`
	FlightNumber string         `json:"flight_number"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FlightPointDTO represents a departure or arrival point.
type FlightPointDTO struct {
	Airport  string `json:"airport"`
	DateTime string `json:"datetime"`
}

// DurationDTO represents an itinerary duration.
type DurationDTO struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// SelectionDTO is the response for offer selection and checkout: the selected
// offer, the provider's re-priced version, and the flow state reached.
type SelectionDTO struct {
	Offer  OfferDTO   `json:"offer"`
	Priced []OfferDTO `json:"priced_offers"`
	State  string     `json:"state"`
}

// ConfirmationDTO is the response for a completed booking.
type ConfirmationDTO struct {
	ID        string        `json:"id"`
	PNR       string        `json:"pnr,omitempty"`
	Offers    []OfferDTO    `json:"offers"`
	Travelers []TravelerDTO `json:"travelers"`
}

// TravelerDTO is a booked passenger as echoed back by the provider.
type TravelerDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// UserDTO is a provider account record.
type UserDTO struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SigninResponseDTO is the response for a successful signin.
type SigninResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToSearchResponseDTO converts a search result to its response DTO.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:        result.Criteria.Origin,
			Destination:   result.Criteria.Destination,
			DepartureDate: result.Criteria.DepartureDate,
			ReturnDate:    result.Criteria.ReturnDate,
			Adults:        result.Criteria.Adults,
			Children:      result.Criteria.Children,
			TravelClass:   result.Criteria.TravelClass,
		},
		FilterBounds: FilterBoundsDTO{
			MaxPrice: result.Bounds.MaxPrice,
			Airlines: lo.Map(result.Bounds.Airlines, func(a usecase.AirlineOption, _ int) AirlineDTO {
				return AirlineDTO{Code: a.Code, Name: a.Name}
			}),
		},
		Metadata: MetadataDTO{
			TotalResults:   result.Metadata.TotalResults,
			MatchedResults: result.Metadata.MatchedResults,
			SearchTimeMs:   result.Metadata.SearchTimeMs,
		},
		Offers: lo.Map(result.Offers, func(o domain.FlightOffer, _ int) OfferDTO {
			return ToOfferDTO(&o)
		}),
	}
}

// ToOfferDTO converts a domain FlightOffer to an OfferDTO with derived fields.
func ToOfferDTO(offer *domain.FlightOffer) OfferDTO {
	return OfferDTO{
		ID: offer.ID,
		Price: PriceDTO{
			Total:    offer.Price.Total,
			Amount:   offer.Price.TotalAmount(),
			Currency: offer.Price.Currency,
		},
		Itineraries: lo.Map(offer.Itineraries, func(it domain.Itinerary, _ int) ItineraryDTO {
			return toItineraryDTO(it)
		}),
	}
}

// toItineraryDTO derives the display fields for one itinerary.
func toItineraryDTO(it domain.Itinerary) ItineraryDTO {
	stops := domain.StopCount(it)

	// Unparsable provider timestamps leave the duration zeroed rather than
	// failing the whole response.
	duration, err := domain.ItineraryDuration(it)
	if err != nil {
		duration = domain.DurationInfo{}
	}

	return ItineraryDTO{
		Segments: lo.Map(it.Segments, func(seg domain.Segment, _ int) SegmentDTO {
			return SegmentDTO{
				Airline: AirlineDTO{
					Code: seg.CarrierCode,
					Name: domain.AirlineName(seg.CarrierCode),
				},
				FlightNumber: seg.CarrierCode + seg.Number,
				Departure: FlightPointDTO{
					Airport:  seg.Departure.IATACode,
					DateTime: seg.Departure.At,
				},
				Arrival: FlightPointDTO{
					Airport:  seg.Arrival.IATACode,
					DateTime: seg.Arrival.At,
				},
			}
		}),
		Duration: DurationDTO{
			Hours:        duration.Hours,
			Minutes:      duration.Minutes,
			TotalMinutes: duration.TotalMinutes,
			Formatted:    duration.Formatted,
		},
		Stops:      stops,
		StopsLabel: domain.StopsLabel(stops),
	}
}

// ToSelectionDTO converts a booking-flow selection to its response DTO.
func ToSelectionDTO(sel *usecase.Selection) *SelectionDTO {
	if sel == nil {
		return nil
	}

	return &SelectionDTO{
		Offer: ToOfferDTO(&sel.Offer),
		Priced: lo.Map(sel.Priced.FlightOffers, func(o domain.FlightOffer, _ int) OfferDTO {
			return ToOfferDTO(&o)
		}),
		State: string(sel.State),
	}
}

// ToConfirmationDTO converts a booking confirmation to its response DTO.
func ToConfirmationDTO(conf *domain.BookingConfirmation) *ConfirmationDTO {
	if conf == nil {
		return nil
	}

	return &ConfirmationDTO{
		ID:  conf.ID,
		PNR: conf.PNR(),
		Offers: lo.Map(conf.FlightOffers, func(o domain.FlightOffer, _ int) OfferDTO {
			return ToOfferDTO(&o)
		}),
		Travelers: lo.Map(conf.Travelers, func(tr domain.Traveler, _ int) TravelerDTO {
			return TravelerDTO{
				ID:          tr.ID,
				FirstName:   tr.Name.FirstName,
				LastName:    tr.Name.LastName,
				DateOfBirth: tr.DateOfBirth,
			}
		}),
	}
}

// ToUserDTO converts a provider user record to its response DTO.
func ToUserDTO(u *domain.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToSigninResponseDTO converts an auth session to its response DTO.
func ToSigninResponseDTO(auth *domain.AuthSession) *SigninResponseDTO {
	if auth == nil {
		return nil
	}
	return &SigninResponseDTO{
		Token: auth.Token,
		User:  *ToUserDTO(&auth.User),
	}
}
