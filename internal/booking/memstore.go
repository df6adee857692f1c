package booking

import (
	"context"
	"sync"

	"github.com/venuedesk/venue-reservation/internal/model"
)

// MemStore is an in-memory Store. It backs the test suite and is a
// usable single-process store in its own right; all methods are safe
// for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	byID   map[string]*model.Reservation
	venues []model.Venue
}

// NewMemStore returns a MemStore seeded with the given venues.
func NewMemStore(venues []model.Venue) *MemStore {
	vs := make([]model.Venue, len(venues))
	copy(vs, venues)
	return &MemStore{
		byID:   make(map[string]*model.Reservation),
		venues: vs,
	}
}

func cloneReservation(r *model.Reservation) *model.Reservation {
	out := *r
	out.Attendance = append([]string(nil), r.Attendance...)
	return &out
}

func (m *MemStore) FindLiveReservations(ctx context.Context, venueID, date string) ([]model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Reservation
	for _, r := range m.byID {
		if r.VenueID == venueID && r.Date == date && r.Status.Live() {
			out = append(out, *cloneReservation(r))
		}
	}
	return out, nil
}

func (m *MemStore) Insert(ctx context.Context, res *model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[res.ID] = cloneReservation(res)
	return nil
}

func (m *MemStore) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	return nil
}

func (m *MemStore) UpdateAttendance(ctx context.Context, id string, names []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	r.Attendance = append([]string(nil), names...)
	return nil
}

func (m *MemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *MemStore) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneReservation(r), nil
}

func (m *MemStore) FindByOwner(ctx context.Context, ownerID string) ([]model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Reservation
	for _, r := range m.byID {
		if r.OwnerID == ownerID {
			out = append(out, *cloneReservation(r))
		}
	}
	return out, nil
}

func (m *MemStore) FindAll(ctx context.Context) ([]model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Reservation, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, *cloneReservation(r))
	}
	return out, nil
}

func (m *MemStore) FindByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Reservation
	for _, r := range m.byID {
		if r.Date == date {
			out = append(out, *cloneReservation(r))
		}
	}
	return out, nil
}

func (m *MemStore) ListVenues(ctx context.Context) ([]model.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Venue, len(m.venues))
	copy(out, m.venues)
	return out, nil
}
