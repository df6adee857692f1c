package repository

import (
	"context"
	"database/sql"

	"github.com/venuedesk/venue-reservation/internal/model"
)

// VenueRepo reads the seeded venue catalogue. Venues are reference
// data: no user flow creates or mutates them, so the repo is read-only.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo returns a new VenueRepo bound to the given database.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// ListVenues returns all venues ordered by ID.
func (r *VenueRepo) ListVenues(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT id, name, capacity FROM venues ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Venue, 0)
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
