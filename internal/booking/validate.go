package booking

import (
	"fmt"
	"strings"
	"time"
)

// Candidate is a shape-checked reservation request as received from the
// transport layer. Semantic validation (hours, capacity, conflicts)
// happens here and in FindConflict; the transport is responsible only
// for decoding the JSON body into this struct.
type Candidate struct {
	VenueID               string `json:"venue_id"`
	Purpose               string `json:"purpose"`
	Date                  string `json:"date"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	ParticipantCount      int    `json:"participant_count"`
	OrganizerName         string `json:"organizer_name"`
	OrganizerOrganization string `json:"organizer_organization"`
}

// Validate checks a candidate against the booking rules and returns the
// first violation as a *ValidationError, or nil when the candidate is
// acceptable. The order is fixed: required fields, then range
// well-formedness, then business hours, then capacity. Callers must not
// assume all violations are reported at once.
//
// venueCapacity bounds the headcount for the specific venue; pass 0 to
// apply only the global MaxParticipants ceiling. Conflict detection is
// deliberately not part of validation: it needs storage access and is
// a different kind of failure (409, not 400).
func Validate(cand Candidate, venueCapacity int) error {
	for _, f := range []struct{ name, value string }{
		{"venue_id", cand.VenueID},
		{"purpose", cand.Purpose},
		{"date", cand.Date},
		{"start_time", cand.StartTime},
		{"end_time", cand.EndTime},
		{"organizer_name", cand.OrganizerName},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{
				Reason:  ReasonMissingField,
				Field:   f.name,
				Message: fmt.Sprintf("%s is required", f.name),
			}
		}
	}
	if cand.ParticipantCount < 1 {
		return &ValidationError{
			Reason:  ReasonMissingField,
			Field:   "participant_count",
			Message: "participant_count must be a positive integer",
		}
	}

	// Conflict detection matches dates by string equality, so every
	// date must be in the one canonical YYYY-MM-DD form. time.Parse
	// alone accepts unpadded variants like "2026-9-1"; the round-trip
	// comparison rejects those too.
	if d, err := time.Parse("2006-01-02", cand.Date); err != nil || d.Format("2006-01-02") != cand.Date {
		return &ValidationError{
			Reason:  ReasonFormat,
			Field:   "date",
			Message: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", cand.Date),
		}
	}

	start, err := ParseClock(cand.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(cand.EndTime)
	if err != nil {
		return err
	}

	if !IsOrderedRange(start, end) {
		return &ValidationError{
			Reason:  ReasonInvertedRange,
			Message: "start time must be before end time",
		}
	}
	if !IsWithinBusinessHours(start, end) {
		return &ValidationError{
			Reason:  ReasonOutOfHours,
			Message: "reservations must be between 8:00 AM and 5:00 PM",
		}
	}

	limit := MaxParticipants
	if venueCapacity > 0 && venueCapacity < limit {
		limit = venueCapacity
	}
	if cand.ParticipantCount > limit {
		return &ValidationError{
			Reason:  ReasonCapacityExceeded,
			Field:   "participant_count",
			Message: fmt.Sprintf("participant count cannot exceed %d", limit),
		}
	}
	return nil
}
