package booking

import "github.com/venuedesk/venue-reservation/internal/model"

// FindConflict scans existing reservations for one whose time range
// overlaps the candidate's. Two ranges [s1,e1) and [s2,e2) conflict iff
// s1 < e2 && s2 < e1, so bookings that share a boundary (one ends at
// 10:00, the next starts at 10:00) never collide.
//
// Only live reservations for the same venue and date are inspected;
// everything else is skipped without parsing. The first colliding
// reservation is returned for diagnostic messages, or nil when the
// slot is free. The inputs are never mutated.
func FindConflict(cand Candidate, existing []model.Reservation) (*model.Reservation, error) {
	start, err := ParseClock(cand.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(cand.EndTime)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		r := &existing[i]
		if r.VenueID != cand.VenueID || r.Date != cand.Date || !r.Status.Live() {
			continue
		}
		exStart, err := ParseClock(r.StartTime)
		if err != nil {
			return nil, err
		}
		exEnd, err := ParseClock(r.EndTime)
		if err != nil {
			return nil, err
		}
		if start < exEnd && exStart < end {
			return r, nil
		}
	}
	return nil, nil
}

// HasConflict is the boolean form of FindConflict. Malformed stored
// times are treated as conflicting so that a corrupt record can never
// grant a double booking.
func HasConflict(cand Candidate, existing []model.Reservation) bool {
	hit, err := FindConflict(cand, existing)
	return err != nil || hit != nil
}
