package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	// Wednesday snaps back to the preceding Sunday
	wed := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(wed))

	// Sunday is already the start of its week
	sun := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(sun))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, ParseDuration("15m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
}

func TestLocalDateKey(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-09", LocalDateKey(ts))
}
