package testutil

import (
	"time"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
)

// FixedTime is the instant every fixture starts at.
var FixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock starting at FixedTime that can be
// advanced by the test.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(FixedTime)
}
