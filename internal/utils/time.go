package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/quartr/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
// The result is anchored to the local time zone so day arithmetic against
// other local dates counts whole calendar days.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// Today returns the current local calendar day at midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight normalizes t to 00:00:00 on the same local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}
