// Package booking implements the reservation engine: time and capacity
// validation, conflict detection against existing bookings, the
// reservation lifecycle state machine and the per-date availability
// projection. The package performs no I/O of its own; persistence is
// supplied through the Store interface.
package booking

import "errors"

// Sentinel errors returned by the lifecycle service. Handlers compare
// these with errors.Is to pick the HTTP status.
var (
	// ErrSlotUnavailable signals that the requested time range collides
	// with an existing live reservation for the same venue and date.
	// Distinct from validation failures so clients can re-prompt for a
	// different slot (409 rather than 400).
	ErrSlotUnavailable = errors.New("time slot conflicts with an existing reservation")

	// ErrNotFound is returned when no reservation with the given ID
	// exists.
	ErrNotFound = errors.New("reservation not found")

	// ErrVenueNotFound is returned when a candidate references an
	// unknown venue.
	ErrVenueNotFound = errors.New("venue not found")

	// ErrForbidden is returned when the caller lacks ownership or admin
	// rights for a mutating operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition is returned when a status change is not
	// permitted from the reservation's current state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Reason identifies why a candidate reservation failed validation.
type Reason string

const (
	ReasonFormat           Reason = "format_error"
	ReasonMissingField     Reason = "missing_field"
	ReasonInvertedRange    Reason = "inverted_range"
	ReasonOutOfHours       Reason = "out_of_hours"
	ReasonCapacityExceeded Reason = "capacity_exceeded"
)

// ValidationError reports the first rule a candidate violated. It is a
// client-input error: handlers translate it to a 400 with the message
// surfaced verbatim.
type ValidationError struct {
	Reason  Reason
	Field   string // the offending field, when one can be named
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
