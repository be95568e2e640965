// Package timeutil abstracts the wall clock so time-dependent rules stay
// testable. The session store's TTL expiry and the booking flow's passenger
// age checks both read time through a Clock.
package timeutil

import (
	"time"
)

// Clock supplies the current time. Production code uses RealClock; tests
// inject a MockClock and move it explicitly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a clock frozen at a settable instant.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock frozen at the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the frozen time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the mock clock forward by the given number of minutes.
// Convenient for stepping past a session TTL.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// AdvanceHours moves the mock clock forward by the given number of hours.
func (m *MockClock) AdvanceHours(hours int) {
	m.Advance(time.Duration(hours) * time.Hour)
}

// AdvanceDays moves the mock clock forward by the given number of days.
// Convenient for crossing a passenger's birthday in age-rule tests.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
