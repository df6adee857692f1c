package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// Transitions are enforced by the booking service: pending bookings can
// be confirmed or cancelled by an admin, confirmed bookings can be
// cancelled or completed, and cancelled/completed are terminal.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Valid reports whether s is one of the known status values.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Live reports whether the reservation counts toward conflict checks
// and availability. Everything that is not cancelled is live: pending
// bookings block the slot while awaiting review.
func (s ReservationStatus) Live() bool { return s != StatusCancelled }

// Terminal reports whether no further transitions are allowed.
func (s ReservationStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Reservation is a time-boxed claim on one venue for one date.
//
// Fields:
//  ID                    – opaque unique identifier, assigned at creation.
//  VenueID               – venue being booked.
//  OwnerID               – user who created the reservation; immutable.
//  Purpose               – free-text description of the booking.
//  Date                  – calendar date in "YYYY-MM-DD" form.
//  StartTime, EndTime    – time of day in 24-hour "HH:MM" form;
//                          StartTime < EndTime always holds.
//  ParticipantCount      – expected headcount, 1..20.
//  OrganizerName         – display name of the responsible person.
//  OrganizerOrganization – optional affiliation.
//  Attendance            – attendee names, editable by admins only.
//  Status                – lifecycle state; see ReservationStatus.
//  CreatedAt             – set once at creation.
type Reservation struct {
	ID                    string            `json:"id"`
	VenueID               string            `json:"venue_id"`
	OwnerID               string            `json:"owner_id"`
	Purpose               string            `json:"purpose"`
	Date                  string            `json:"date"`
	StartTime             string            `json:"start_time"`
	EndTime               string            `json:"end_time"`
	ParticipantCount      int               `json:"participant_count"`
	OrganizerName         string            `json:"organizer_name"`
	OrganizerOrganization string            `json:"organizer_organization,omitempty"`
	Attendance            []string          `json:"attendance"`
	Status                ReservationStatus `json:"status"`
	CreatedAt             time.Time         `json:"created_at"`
}
