package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/test/testutil"
)

func validBookRequest() BookFlightRequest {
	return BookFlightRequest{
		Travelers: []domain.Traveler{{
			ID:          "1",
			DateOfBirth: "1990-01-01",
			Name:        domain.TravelerName{FirstName: "Jane", LastName: "Doe"},
			Contact: domain.TravelerContact{
				EmailAddress: "jane@example.com",
				Phones:       []domain.TravelerPhone{{Number: "5551234567"}},
			},
			Documents: []domain.TravelerDocument{{
				DocumentType:    "PASSPORT",
				Number:          "X1234567",
				ExpiryDate:      "2030-01-01",
				IssuanceCountry: "US",
			}},
		}},
	}
}

func TestSearchFlightsRequest_Validate(t *testing.T) {
	t.Run("no filters is valid", func(t *testing.T) {
		req := SearchFlightsRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-09-15"}

		assert.NoError(t, req.Validate())
	})

	t.Run("negative price fails", func(t *testing.T) {
		req := SearchFlightsRequest{Filters: &FilterDTO{Price: testutil.FloatPtr(-10)}}

		err := req.Validate()
		require.Error(t, err)

		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "filters.price")
	})

	t.Run("out-of-range stop bucket fails", func(t *testing.T) {
		req := SearchFlightsRequest{Filters: &FilterDTO{Stops: []int{0, 3}}}

		err := req.Validate()
		require.Error(t, err)

		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "filters.stops")
	})

	t.Run("valid filters pass", func(t *testing.T) {
		req := SearchFlightsRequest{Filters: &FilterDTO{
			Price:    testutil.FloatPtr(500),
			Stops:    []int{0, 1, 2},
			Airlines: testutil.StringSlice("BA"),
		}}

		assert.NoError(t, req.Validate())
	})
}

func TestBookFlightRequest_Validate(t *testing.T) {
	t.Run("valid traveler passes", func(t *testing.T) {
		req := validBookRequest()

		assert.NoError(t, req.Validate())
	})

	t.Run("no travelers fails", func(t *testing.T) {
		req := BookFlightRequest{}

		err := req.Validate()
		require.Error(t, err)

		var verrs *ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "travelers")
	})

	tests := []struct {
		name      string
		mutate    func(*domain.Traveler)
		wantField string
	}{
		{"short first name", func(tr *domain.Traveler) { tr.Name.FirstName = "J" }, "travelers[0].firstName"},
		{"short last name", func(tr *domain.Traveler) { tr.Name.LastName = "D" }, "travelers[0].lastName"},
		{"missing date of birth", func(tr *domain.Traveler) { tr.DateOfBirth = "" }, "travelers[0].dateOfBirth"},
		{"malformed date of birth", func(tr *domain.Traveler) { tr.DateOfBirth = "01/01/1990" }, "travelers[0].dateOfBirth"},
		{"missing email", func(tr *domain.Traveler) { tr.Contact.EmailAddress = "" }, "travelers[0].email"},
		{"invalid email", func(tr *domain.Traveler) { tr.Contact.EmailAddress = "not-an-email" }, "travelers[0].email"},
		{"missing phone", func(tr *domain.Traveler) { tr.Contact.Phones = nil }, "travelers[0].phone"},
		{"short phone", func(tr *domain.Traveler) { tr.Contact.Phones[0].Number = "12345" }, "travelers[0].phone"},
		{"missing documents", func(tr *domain.Traveler) { tr.Documents = nil }, "travelers[0].passportNumber"},
		{"short passport number", func(tr *domain.Traveler) { tr.Documents[0].Number = "X12" }, "travelers[0].passportNumber"},
		{"missing passport expiry", func(tr *domain.Traveler) { tr.Documents[0].ExpiryDate = "" }, "travelers[0].passportExpiry"},
		{"missing passport country", func(tr *domain.Traveler) { tr.Documents[0].IssuanceCountry = "" }, "travelers[0].passportCountry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookRequest()
			tt.mutate(&req.Travelers[0])

			err := req.Validate()
			require.Error(t, err)

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestToDomainCriteria(t *testing.T) {
	req := SearchFlightsRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-09-15",
		ReturnDate:    "2026-09-22",
		Adults:        2,
		Children:      1,
		TravelClass:   "BUSINESS",
	}

	criteria := ToDomainCriteria(&req)

	assert.Equal(t, "JFK", criteria.Origin)
	assert.Equal(t, "LHR", criteria.Destination)
	assert.Equal(t, "2026-09-22", criteria.ReturnDate)
	assert.Equal(t, 2, criteria.Adults)
	assert.Equal(t, 1, criteria.Children)
	assert.Equal(t, "BUSINESS", criteria.TravelClass)
}

func TestToFilterCriteria(t *testing.T) {
	t.Run("nil filters yield nil criteria", func(t *testing.T) {
		req := SearchFlightsRequest{}

		assert.Nil(t, ToFilterCriteria(&req))
	})

	t.Run("omitted price means no cap", func(t *testing.T) {
		req := SearchFlightsRequest{Filters: &FilterDTO{Stops: []int{0}}}

		criteria := ToFilterCriteria(&req)
		require.NotNil(t, criteria)
		assert.Equal(t, noPriceCap, criteria.Price)
		assert.True(t, criteria.Matches(domain.FlightOffer{
			Price:       domain.Price{Total: "99999.99"},
			Itineraries: []domain.Itinerary{{Segments: []domain.Segment{{CarrierCode: "BA"}}}},
		}), "no cap lets any priced offer through")
	})

	t.Run("explicit price is carried over", func(t *testing.T) {
		req := SearchFlightsRequest{Filters: testutil.Ptr(FilterDTO{
			Price:    testutil.FloatPtr(450),
			Airlines: testutil.StringSlice("BA", "AF"),
		})}

		criteria := ToFilterCriteria(&req)
		require.NotNil(t, criteria)
		assert.Equal(t, 450.0, criteria.Price)
		assert.Equal(t, []string{"BA", "AF"}, criteria.Airlines)
	})
}
