package repository

import "database/sql"

// Store bundles the reservation and venue repositories into a single
// value satisfying booking.Store, so the booking service depends on one
// collaborator rather than two.
type Store struct {
	*ReservationRepo
	*VenueRepo
}

// NewStore builds a Store over one database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		ReservationRepo: NewReservationRepo(db),
		VenueRepo:       NewVenueRepo(db),
	}
}
