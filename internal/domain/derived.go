package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DefaultMaxPrice is the price bound used when a result set is empty.
// It is a display default, not a business rule.
const DefaultMaxPrice = 2000

// DurationInfo is an itinerary or segment duration decomposed into hours and minutes.
type DurationInfo struct {
	// Hours is the whole-hour part of the duration
	Hours int `json:"hours"`

	// Minutes is the remaining minutes (0-59 for well-formed input)
	Minutes int `json:"minutes"`

	// TotalMinutes is the full duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is the human-readable form, e.g. "2h 30m"
	Formatted string `json:"formatted"`
}

// NewDurationInfo builds a DurationInfo from a total minute count.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	return DurationInfo{
		Hours:        hours,
		Minutes:      mins,
		TotalMinutes: totalMinutes,
		Formatted:    fmt.Sprintf("%dh %dm", hours, mins),
	}
}

// ParseLocalTime parses an ISO 8601 timestamp as sent by the provider.
// Offsets are optional; second precision is not guaranteed.
func ParseLocalTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// DurationBetween computes the duration from a departure timestamp to an
// arrival timestamp. The millisecond delta is rounded (not truncated) to whole
// minutes before the hour/minute decomposition. Out-of-order timestamps are not
// guarded against and produce a negative duration.
func DurationBetween(departureAt, arrivalAt string) (DurationInfo, error) {
	dep, err := ParseLocalTime(departureAt)
	if err != nil {
		return DurationInfo{}, fmt.Errorf("departure: %w", err)
	}

	arr, err := ParseLocalTime(arrivalAt)
	if err != nil {
		return DurationInfo{}, fmt.Errorf("arrival: %w", err)
	}

	totalMinutes := int(math.Round(arr.Sub(dep).Minutes()))
	return NewDurationInfo(totalMinutes), nil
}

// ItineraryDuration computes the door-to-door duration of an itinerary:
// last segment arrival minus first segment departure, layovers included.
func ItineraryDuration(it Itinerary) (DurationInfo, error) {
	return DurationBetween(it.FirstSegment().Departure.At, it.LastSegment().Arrival.At)
}

// StopCount returns the number of stops in an itinerary. Segments are never
// empty, so the count is never negative.
func StopCount(it Itinerary) int {
	return len(it.Segments) - 1
}

// StopsLabel renders a stop count for display: "Direct" for non-stop
// itineraries, "N stop(s)" otherwise.
func StopsLabel(stops int) string {
	if stops == 0 {
		return "Direct"
	}
	return fmt.Sprintf("%d stop(s)", stops)
}

// TotalAmount parses the offer total as a float. Amounts are trusted to be
// well-formed decimal strings; a malformed amount parses as 0.
func (p Price) TotalAmount() float64 {
	amount, _ := strconv.ParseFloat(p.Total, 64)
	return amount
}

// MaxPrice returns the ceiling of the highest offer total in the set.
// An empty set yields 0; callers substitute DefaultMaxPrice.
func MaxPrice(offers []FlightOffer) float64 {
	var highest float64
	for _, o := range offers {
		if amount := o.Price.TotalAmount(); amount > highest {
			highest = amount
		}
	}
	return math.Ceil(highest)
}

// DistinctAirlines collects the carrier codes appearing on the outbound
// itinerary of each offer, in first-seen order. Return-leg carriers are not
// scanned; the filter list is built from outbound legs only.
func DistinctAirlines(offers []FlightOffer) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, o := range offers {
		for _, seg := range o.Outbound().Segments {
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}
			codes = append(codes, seg.CarrierCode)
		}
	}
	return codes
}
