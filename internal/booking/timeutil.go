package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Business hours for every venue: bookings may start at 08:00 at the
// earliest and must end by 17:00.
const (
	BusinessOpenMinutes  = 8 * 60  // 08:00
	BusinessCloseMinutes = 17 * 60 // 17:00
)

// MaxParticipants is the global participant ceiling. No seeded venue
// holds more than 20 people, so the ceiling doubles as a capacity check
// for venues without a stricter limit.
const MaxParticipants = 20

// ParseClock converts an "HH:MM" string into minutes since midnight.
// Hours accept an optional leading zero ("8:30" and "08:30" are both
// valid); anything else fails with a *ValidationError of reason
// ReasonFormat.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, formatError(s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, formatError(s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, formatError(s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as a zero-padded "HH:MM"
// string, the inverse of ParseClock for canonical input.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsWithinBusinessHours reports whether a [start, end) range in minutes
// lies inside the 08:00–17:00 booking window. Both boundaries are
// themselves valid: a booking may start exactly at opening and end
// exactly at closing.
func IsWithinBusinessHours(startMinutes, endMinutes int) bool {
	return startMinutes >= BusinessOpenMinutes && endMinutes <= BusinessCloseMinutes
}

// IsOrderedRange reports whether the range is well formed, i.e. the
// start strictly precedes the end. Zero-length bookings are rejected.
func IsOrderedRange(startMinutes, endMinutes int) bool {
	return startMinutes < endMinutes
}

func formatError(s string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonFormat,
		Message: fmt.Sprintf("invalid time %q: expected HH:MM in 24-hour form", s),
	}
}
