// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// ReservationConfirmedEvent is published when a booking reaches the
// confirmed state, either directly at creation (auto-approve) or when
// an admin approves a pending request. It carries enough information
// for downstream consumers to log or notify without querying the
// primary database.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	VenueID       string `json:"venue_id"`
	OwnerID       string `json:"owner_id"`
	Purpose       string `json:"purpose"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Organizer     string `json:"organizer"`
	Participants  int    `json:"participants"`
	ConfirmedAt   string `json:"confirmed_at"`
}
