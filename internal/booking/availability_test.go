package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuedesk/venue-reservation/internal/model"
)

var testVenues = []model.Venue{
	{ID: "1", Name: "Conference Room A", Capacity: 20},
	{ID: "2", Name: "Meeting Room 1", Capacity: 8},
}

func at(hhmm string) time.Time {
	m, err := ParseClock(hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, 9, 1, m/60, m%60, 0, 0, time.UTC)
}

func TestProjectAvailabilityEmpty(t *testing.T) {
	snap := ProjectAvailability("2026-09-01", testVenues, nil, at("10:00"))

	assert.Equal(t, "2026-09-01", snap.Date)
	assert.Equal(t, 2, snap.TotalVenues)
	assert.Equal(t, 2, snap.AvailableVenues)
	require.Len(t, snap.Venues, 2)
	for _, v := range snap.Venues {
		assert.Equal(t, "available", v.Status)
		assert.Nil(t, v.NextAvailable)
		assert.Nil(t, v.CurrentReservation)
		assert.Empty(t, v.Reservations)
	}
}

func TestProjectAvailabilityOccupied(t *testing.T) {
	reservations := []model.Reservation{
		{
			ID: "r1", VenueID: "1", Date: "2026-09-01",
			StartTime: "14:00", EndTime: "15:30",
			Purpose: "board meeting", OrganizerName: "Dana",
			Status: model.StatusConfirmed,
		},
	}
	snap := ProjectAvailability("2026-09-01", testVenues, reservations, at("14:30"))

	assert.Equal(t, 1, snap.AvailableVenues)
	v := snap.Venues[0]
	assert.Equal(t, "occupied", v.Status)
	require.NotNil(t, v.CurrentReservation)
	assert.Equal(t, "board meeting", v.CurrentReservation.Purpose)
	assert.Equal(t, "Dana", v.CurrentReservation.Organizer)
	require.NotNil(t, v.NextAvailable)
	assert.Equal(t, "15:30", *v.NextAvailable, "occupied venue frees up when the current booking ends")

	// The other venue is untouched.
	assert.Equal(t, "available", snap.Venues[1].Status)
}

func TestProjectAvailabilityBoundaries(t *testing.T) {
	reservations := []model.Reservation{
		{
			ID: "r1", VenueID: "1", Date: "2026-09-01",
			StartTime: "14:00", EndTime: "15:30",
			Status: model.StatusConfirmed,
		},
	}

	t.Run("occupied at exact start", func(t *testing.T) {
		snap := ProjectAvailability("2026-09-01", testVenues, reservations, at("14:00"))
		assert.Equal(t, "occupied", snap.Venues[0].Status)
	})

	t.Run("free at exact end", func(t *testing.T) {
		snap := ProjectAvailability("2026-09-01", testVenues, reservations, at("15:30"))
		assert.Equal(t, "available", snap.Venues[0].Status)
	})
}

func TestProjectAvailabilityNextIncoming(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "r1", VenueID: "1", Date: "2026-09-01", StartTime: "14:00", EndTime: "15:00", Status: model.StatusConfirmed},
		{ID: "r2", VenueID: "1", Date: "2026-09-01", StartTime: "11:00", EndTime: "12:00", Status: model.StatusConfirmed},
	}
	// Free at 10:00; earliest incoming booking starts at 11:00 even
	// though it was listed second.
	snap := ProjectAvailability("2026-09-01", testVenues, reservations, at("10:00"))
	v := snap.Venues[0]
	assert.Equal(t, "available", v.Status)
	require.NotNil(t, v.NextAvailable)
	assert.Equal(t, "11:00", *v.NextAvailable)
	require.Len(t, v.Reservations, 2)
	assert.Equal(t, "11:00", v.Reservations[0].StartTime, "day schedule is sorted by start")

	// Between bookings at 12:30 the next boundary is 14:00.
	snap = ProjectAvailability("2026-09-01", testVenues, reservations, at("12:30"))
	v = snap.Venues[0]
	assert.Equal(t, "available", v.Status)
	require.NotNil(t, v.NextAvailable)
	assert.Equal(t, "14:00", *v.NextAvailable)

	// After the last booking there is no further boundary.
	snap = ProjectAvailability("2026-09-01", testVenues, reservations, at("16:00"))
	v = snap.Venues[0]
	assert.Equal(t, "available", v.Status)
	assert.Nil(t, v.NextAvailable)
}

func TestProjectAvailabilityFilters(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "r1", VenueID: "1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: model.StatusCancelled},
		{ID: "r2", VenueID: "1", Date: "2026-09-02", StartTime: "10:00", EndTime: "11:00", Status: model.StatusConfirmed},
		{ID: "r3", VenueID: "ghost", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: model.StatusConfirmed},
	}
	snap := ProjectAvailability("2026-09-01", testVenues, reservations, at("10:30"))
	assert.Equal(t, 2, snap.AvailableVenues, "cancelled, wrong-date and unknown-venue rows never occupy")
	assert.Empty(t, snap.Venues[0].Reservations)
}

func TestProjectAvailabilityIdempotent(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "r1", VenueID: "1", Date: "2026-09-01", StartTime: "09:00", EndTime: "10:30", Status: model.StatusConfirmed},
		{ID: "r2", VenueID: "2", Date: "2026-09-01", StartTime: "13:00", EndTime: "14:00", Status: model.StatusPending},
	}
	now := at("09:45")
	first := ProjectAvailability("2026-09-01", testVenues, reservations, now)
	second := ProjectAvailability("2026-09-01", testVenues, reservations, now)
	assert.Equal(t, first, second, "projection is stable for fixed inputs")
}
