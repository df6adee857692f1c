package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venuedesk/venue-reservation/internal/model"
)

// Clock abstracts wall-clock time so the lifecycle and the availability
// projection stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Store is the persistence collaborator the booking engine writes
// through. Implementations must guarantee that FindLiveReservations
// excludes cancelled records. The engine does not care how records are
// stored beyond that.
type Store interface {
	FindLiveReservations(ctx context.Context, venueID, date string) ([]model.Reservation, error)
	Insert(ctx context.Context, res *model.Reservation) error
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error
	UpdateAttendance(ctx context.Context, id string, names []string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Reservation, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Reservation, error)
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]model.Reservation, error)
	ListVenues(ctx context.Context) ([]model.Venue, error)
}

// Service orchestrates the reservation lifecycle: create runs the
// validator and the conflict detector before persisting, status changes
// follow the state machine, deletes require ownership or admin rights.
//
// The conflict check and the subsequent insert are serialized per
// (venue, date) with a keyed mutex, closing the read-then-write race in
// which two overlapping creates both observe an empty slot. SQL-backed
// stores additionally lock the venue row so separate processes
// serialize at the database.
type Service struct {
	store       Store
	clock       Clock
	autoApprove bool

	mu    sync.Mutex
	slots map[string]*sync.Mutex
}

// NewService constructs a Service. autoApprove selects the initial
// status of new reservations: confirmed when true, pending review when
// false.
func NewService(store Store, clock Clock, autoApprove bool) *Service {
	if store == nil {
		panic("nil store passed to booking.NewService")
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{
		store:       store,
		clock:       clock,
		autoApprove: autoApprove,
		slots:       make(map[string]*sync.Mutex),
	}
}

// slotLock returns the mutex guarding one (venue, date) slot, creating
// it on first use. Lock granularity is a whole venue-day, which is the
// exact scope of the conflict invariant.
func (s *Service) slotLock(venueID, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := venueID + "\x00" + date
	l, ok := s.slots[key]
	if !ok {
		l = &sync.Mutex{}
		s.slots[key] = l
	}
	return l
}

// Create validates the candidate, checks it against all live
// reservations for the same venue and date, and persists it with a
// generated ID. It returns ErrSlotUnavailable when the slot is taken
// and a *ValidationError when the candidate breaks a booking rule; in
// both cases nothing is written.
func (s *Service) Create(ctx context.Context, cand Candidate, callerID string) (*model.Reservation, error) {
	// Run the field checks before resolving the venue so a missing
	// venue_id reports as a validation failure, not an unknown venue.
	if err := Validate(cand, 0); err != nil {
		return nil, err
	}
	venue, err := s.findVenue(ctx, cand.VenueID)
	if err != nil {
		return nil, err
	}
	if err := Validate(cand, venue.Capacity); err != nil {
		return nil, err
	}
	// Canonicalize to zero-padded HH:MM so stored times compare
	// lexicographically.
	start, _ := ParseClock(cand.StartTime)
	end, _ := ParseClock(cand.EndTime)
	cand.StartTime = FormatClock(start)
	cand.EndTime = FormatClock(end)

	lock := s.slotLock(cand.VenueID, cand.Date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.store.FindLiveReservations(ctx, cand.VenueID, cand.Date)
	if err != nil {
		return nil, err
	}
	hit, err := FindConflict(cand, existing)
	if err != nil {
		return nil, err
	}
	if hit != nil {
		return nil, ErrSlotUnavailable
	}

	status := model.StatusConfirmed
	if !s.autoApprove {
		status = model.StatusPending
	}
	res := &model.Reservation{
		ID:                    uuid.NewString(),
		VenueID:               cand.VenueID,
		OwnerID:               callerID,
		Purpose:               cand.Purpose,
		Date:                  cand.Date,
		StartTime:             cand.StartTime,
		EndTime:               cand.EndTime,
		ParticipantCount:      cand.ParticipantCount,
		OrganizerName:         cand.OrganizerName,
		OrganizerOrganization: cand.OrganizerOrganization,
		Attendance:            []string{},
		Status:                status,
		CreatedAt:             s.clock.Now().UTC(),
	}
	if err := s.store.Insert(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// allowedTransitions is the lifecycle state machine. Absent entries are
// rejected with ErrInvalidTransition; cancelled and completed have no
// outgoing edges.
var allowedTransitions = map[model.ReservationStatus][]model.ReservationStatus{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusCancelled, model.StatusCompleted},
}

func transitionAllowed(from, to model.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves a reservation to a new lifecycle state. Status
// changes are admin-only regardless of ownership.
func (s *Service) UpdateStatus(ctx context.Context, id string, next model.ReservationStatus, callerID string, isAdmin bool) (*model.Reservation, error) {
	res, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	if !isAdmin {
		return nil, ErrForbidden
	}
	if !next.Valid() || !transitionAllowed(res.Status, next) {
		return nil, ErrInvalidTransition
	}
	if err := s.store.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	res.Status = next
	return res, nil
}

// Delete permanently removes a reservation. The owner and admins may
// delete; anyone else gets ErrForbidden and the record is untouched.
// There is no tombstone: a deleted booking frees its slot immediately.
func (s *Service) Delete(ctx context.Context, id, callerID string, isAdmin bool) error {
	res, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrNotFound
	}
	if res.OwnerID != callerID && !isAdmin {
		return ErrForbidden
	}
	return s.store.Delete(ctx, id)
}

// SetAttendance replaces the attendance list wholesale. Editing
// attendance is admin-only.
func (s *Service) SetAttendance(ctx context.Context, id string, names []string, callerID string, isAdmin bool) (*model.Reservation, error) {
	if !isAdmin {
		return nil, ErrForbidden
	}
	res, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	if names == nil {
		names = []string{}
	}
	if err := s.store.UpdateAttendance(ctx, id, names); err != nil {
		return nil, err
	}
	res.Attendance = names
	return res, nil
}

// Get returns one reservation, restricted to its owner unless the
// caller is an admin.
func (s *Service) Get(ctx context.Context, id, callerID string, isAdmin bool) (*model.Reservation, error) {
	res, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	if res.OwnerID != callerID && !isAdmin {
		return nil, ErrForbidden
	}
	return res, nil
}

// List returns the caller's reservations; admins see every
// reservation.
func (s *Service) List(ctx context.Context, callerID string, isAdmin bool) ([]model.Reservation, error) {
	if isAdmin {
		return s.store.FindAll(ctx)
	}
	return s.store.FindByOwner(ctx, callerID)
}

// Venues returns the seeded venue list.
func (s *Service) Venues(ctx context.Context) ([]model.Venue, error) {
	return s.store.ListVenues(ctx)
}

// Availability computes the availability snapshot for a date. The
// instant is taken from the service clock; ProjectAvailability itself
// stays pure.
func (s *Service) Availability(ctx context.Context, date string) (*AvailabilitySnapshot, error) {
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.store.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	snap := ProjectAvailability(date, venues, reservations, s.clock.Now())
	return &snap, nil
}

// Schedule returns a venue's live reservations for one date, ordered by
// start time.
func (s *Service) Schedule(ctx context.Context, venueID, date string) (*model.Venue, []model.Reservation, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := s.store.FindLiveReservations(ctx, venueID, date)
	if err != nil {
		return nil, nil, err
	}
	sortByStart(reservations)
	return venue, reservations, nil
}

func (s *Service) findVenue(ctx context.Context, venueID string) (*model.Venue, error) {
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	for i := range venues {
		if venues[i].ID == venueID {
			return &venues[i], nil
		}
	}
	return nil, ErrVenueNotFound
}
