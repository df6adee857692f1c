package booking

import (
	"sort"
	"time"

	"github.com/venuedesk/venue-reservation/internal/model"
)

// CurrentReservation describes the booking occupying a venue right now.
type CurrentReservation struct {
	Purpose   string `json:"purpose"`
	Organizer string `json:"organizer"`
	EndTime   string `json:"end_time"`
}

// ReservationSlot is the public shape of one booking on a venue's day
// schedule. Owner identity is deliberately absent.
type ReservationSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Purpose   string `json:"purpose"`
	Organizer string `json:"organizer"`
}

// VenueAvailability is the projected state of one venue for a date.
// NextAvailable reports the boundary of the current state: the end of
// the occupying booking when occupied, or the start of the next
// incoming booking when free ("available until" framing).
type VenueAvailability struct {
	VenueID            string              `json:"venue_id"`
	VenueName          string              `json:"venue_name"`
	Capacity           int                 `json:"capacity"`
	Status             string              `json:"status"` // "available" | "occupied"
	NextAvailable      *string             `json:"next_available"`
	CurrentReservation *CurrentReservation `json:"current_reservation"`
	Reservations       []ReservationSlot   `json:"reservations"`
}

// AvailabilitySnapshot aggregates per-venue availability for one date.
type AvailabilitySnapshot struct {
	Date            string              `json:"date"`
	Venues          []VenueAvailability `json:"venues"`
	TotalVenues     int                 `json:"total_venues"`
	AvailableVenues int                 `json:"available_venues"`
}

// ProjectAvailability maps each venue to its occupied/available state
// for the given date. A venue is occupied when a live reservation's
// [start, end) range contains now's time of day. The function is pure:
// it never mutates its inputs and is stable for a fixed
// (date, venues, reservations, now) triple, so it is safe to recompute
// on every poll.
//
// Reservations outside the requested date or with a cancelled status
// are ignored. Stored times that fail to parse are skipped rather than
// aborting the whole snapshot.
func ProjectAvailability(date string, venues []model.Venue, reservations []model.Reservation, now time.Time) AvailabilitySnapshot {
	nowMinutes := now.Hour()*60 + now.Minute()

	perVenue := make(map[string][]model.Reservation, len(venues))
	for _, r := range reservations {
		if r.Date != date || !r.Status.Live() {
			continue
		}
		perVenue[r.VenueID] = append(perVenue[r.VenueID], r)
	}

	snap := AvailabilitySnapshot{
		Date:        date,
		Venues:      make([]VenueAvailability, 0, len(venues)),
		TotalVenues: len(venues),
	}
	for _, v := range venues {
		va := projectVenue(v, perVenue[v.ID], nowMinutes)
		if va.Status == "available" {
			snap.AvailableVenues++
		}
		snap.Venues = append(snap.Venues, va)
	}
	return snap
}

func projectVenue(v model.Venue, booked []model.Reservation, nowMinutes int) VenueAvailability {
	va := VenueAvailability{
		VenueID:      v.ID,
		VenueName:    v.Name,
		Capacity:     v.Capacity,
		Status:       "available",
		Reservations: []ReservationSlot{},
	}
	if len(booked) == 0 {
		return va
	}

	sortByStart(booked)

	var current *model.Reservation
	nextIncoming := -1
	for i := range booked {
		r := &booked[i]
		start, err := ParseClock(r.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(r.EndTime)
		if err != nil {
			continue
		}
		if current == nil && start <= nowMinutes && nowMinutes < end {
			current = r
		}
		if nextIncoming == -1 && start > nowMinutes {
			nextIncoming = i
		}
		va.Reservations = append(va.Reservations, ReservationSlot{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Purpose:   r.Purpose,
			Organizer: r.OrganizerName,
		})
	}

	switch {
	case current != nil:
		va.Status = "occupied"
		va.CurrentReservation = &CurrentReservation{
			Purpose:   current.Purpose,
			Organizer: current.OrganizerName,
			EndTime:   current.EndTime,
		}
		end := current.EndTime
		va.NextAvailable = &end
	case nextIncoming >= 0:
		start := booked[nextIncoming].StartTime
		va.NextAvailable = &start
	}
	return va
}

// sortByStart orders reservations by start time ascending. HH:MM
// strings are zero-padded on write, but parse anyway so "8:30" sorts
// correctly next to "08:30".
func sortByStart(rs []model.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, errA := ParseClock(rs[i].StartTime)
		b, errB := ParseClock(rs[j].StartTime)
		if errA != nil || errB != nil {
			return rs[i].StartTime < rs[j].StartTime
		}
		return a < b
	})
}
