package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/venuedesk/venue-reservation/internal/booking"
	"github.com/venuedesk/venue-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. All
// timestamp fields are stored in UTC; attendance is stored as a JSON
// array in a TEXT column. Together with VenueRepo it satisfies
// booking.Store (see Store in store.go).
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle for transaction management.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, venue_id, owner_id, purpose, date, start_time, end_time,
	participant_count, organizer_name, organizer_organization, attendance, status, created_at`

func scanReservation(row interface {
	Scan(dest ...interface{}) error
}) (*model.Reservation, error) {
	var res model.Reservation
	var org sql.NullString
	var attendance []byte
	err := row.Scan(
		&res.ID, &res.VenueID, &res.OwnerID, &res.Purpose, &res.Date,
		&res.StartTime, &res.EndTime, &res.ParticipantCount,
		&res.OrganizerName, &org, &attendance, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if org.Valid {
		res.OrganizerOrganization = org.String
	}
	res.Attendance = []string{}
	if len(attendance) > 0 {
		if err := json.Unmarshal(attendance, &res.Attendance); err != nil {
			// Tolerate a malformed attendance blob; the booking data
			// itself is still usable.
			res.Attendance = []string{}
		}
	}
	return &res, nil
}

// Insert persists a new reservation. The conflict window between the
// service's read and this write is closed at the database: the venue
// row is locked FOR UPDATE inside a transaction and the overlap check
// is repeated before inserting, so two processes racing for the same
// slot serialize here and the loser gets booking.ErrSlotUnavailable.
func (r *ReservationRepo) Insert(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Serialize concurrent inserts for this venue.
	var venueID string
	const lockQ = `SELECT id FROM venues WHERE id = ? FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQ, res.VenueID).Scan(&venueID); err != nil {
		if err == sql.ErrNoRows {
			return booking.ErrVenueNotFound
		}
		return err
	}

	// Re-check for overlap now that the venue is locked. Times are
	// zero-padded HH:MM, so string comparison is chronological.
	const overlapQ = `SELECT COUNT(*) FROM reservations
	                  WHERE venue_id = ? AND date = ? AND status <> 'cancelled'
	                    AND start_time < ? AND end_time > ?`
	var clashes int
	if err := tx.QueryRowContext(ctx, overlapQ, res.VenueID, res.Date, res.EndTime, res.StartTime).Scan(&clashes); err != nil {
		return err
	}
	if clashes > 0 {
		return booking.ErrSlotUnavailable
	}

	attendance, err := json.Marshal(res.Attendance)
	if err != nil {
		return err
	}
	var org interface{}
	if res.OrganizerOrganization != "" {
		org = res.OrganizerOrganization
	}
	const insQ = `INSERT INTO reservations (` + reservationColumns + `)
	              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insQ,
		res.ID, res.VenueID, res.OwnerID, res.Purpose, res.Date,
		res.StartTime, res.EndTime, res.ParticipantCount,
		res.OrganizerName, org, attendance, res.Status, res.CreatedAt,
	); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// FindLiveReservations returns every non-cancelled reservation for the
// venue and date, ordered by start time.
func (r *ReservationRepo) FindLiveReservations(ctx context.Context, venueID, date string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE venue_id = ? AND date = ? AND status <> 'cancelled'
	           ORDER BY start_time ASC`
	return r.queryMany(ctx, q, venueID, date)
}

// FindByID returns one reservation, or (nil, nil) when absent.
func (r *ReservationRepo) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FindByOwner returns a user's reservations, upcoming first.
func (r *ReservationRepo) FindByOwner(ctx context.Context, ownerID string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE owner_id = ? ORDER BY date ASC, start_time ASC`
	return r.queryMany(ctx, q, ownerID)
}

// FindAll returns every reservation, for admin listings.
func (r *ReservationRepo) FindAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           ORDER BY date ASC, start_time ASC`
	return r.queryMany(ctx, q)
}

// FindByDate returns every reservation on a date, across venues. The
// availability projection filters by status itself, so cancelled rows
// are excluded here only to keep payloads small.
func (r *ReservationRepo) FindByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE date = ? AND status <> 'cancelled'
	           ORDER BY start_time ASC`
	return r.queryMany(ctx, q, date)
}

// UpdateStatus sets the lifecycle state of one reservation.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	const q = `UPDATE reservations SET status = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateAttendance replaces the attendance list wholesale.
func (r *ReservationRepo) UpdateAttendance(ctx context.Context, id string, names []string) error {
	attendance, err := json.Marshal(names)
	if err != nil {
		return err
	}
	const q = `UPDATE reservations SET attendance = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, attendance, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a reservation permanently.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *ReservationRepo) queryMany(ctx context.Context, q string, args ...interface{}) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return booking.ErrNotFound
	}
	return nil
}
