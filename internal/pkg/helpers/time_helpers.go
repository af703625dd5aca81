package helpers

import "time"

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// StartOfWeek returns midnight of the Sunday on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	daysSinceSunday := int(t.Weekday())
	day := t.AddDate(0, 0, -daysSinceSunday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// LocalDateKey returns the local calendar date of t as a YYYY-MM-DD string.
func LocalDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
