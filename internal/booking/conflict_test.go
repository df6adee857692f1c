package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuedesk/venue-reservation/internal/model"
)

func confirmed(venueID, date, start, end string) model.Reservation {
	return model.Reservation{
		ID:        "existing-" + venueID + "-" + start,
		VenueID:   venueID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    model.StatusConfirmed,
	}
}

func candidate(venueID, date, start, end string) Candidate {
	return Candidate{
		VenueID:   venueID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindConflictOverlaps(t *testing.T) {
	existing := []model.Reservation{confirmed("1", "2026-09-01", "10:00", "12:00")}

	cases := []struct {
		name       string
		start, end string
		conflict   bool
	}{
		{name: "identical range", start: "10:00", end: "12:00", conflict: true},
		{name: "overlaps start", start: "09:00", end: "10:30", conflict: true},
		{name: "overlaps end", start: "11:30", end: "13:00", conflict: true},
		{name: "candidate contains existing", start: "09:00", end: "13:00", conflict: true},
		{name: "existing contains candidate", start: "10:30", end: "11:00", conflict: true},
		{name: "one minute of overlap", start: "11:59", end: "12:30", conflict: true},
		{name: "ends at existing start", start: "09:00", end: "10:00", conflict: false},
		{name: "starts at existing end", start: "12:00", end: "13:00", conflict: false},
		{name: "entirely before", start: "08:00", end: "09:00", conflict: false},
		{name: "entirely after", start: "13:00", end: "14:00", conflict: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hit, err := FindConflict(candidate("1", "2026-09-01", tc.start, tc.end), existing)
			require.NoError(t, err)
			if tc.conflict {
				require.NotNil(t, hit)
				assert.Equal(t, existing[0].ID, hit.ID)
			} else {
				assert.Nil(t, hit)
			}
		})
	}
}

func TestFindConflictSymmetry(t *testing.T) {
	// If A conflicts with B then B conflicts with A, for every pair of
	// ranges around a fixed 10:00-12:00 window.
	ranges := [][2]string{
		{"09:00", "10:30"},
		{"10:00", "12:00"},
		{"11:00", "13:00"},
		{"08:00", "09:00"},
		{"12:00", "13:00"},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			ab := HasConflict(
				candidate("1", "2026-09-01", a[0], a[1]),
				[]model.Reservation{confirmed("1", "2026-09-01", b[0], b[1])},
			)
			ba := HasConflict(
				candidate("1", "2026-09-01", b[0], b[1]),
				[]model.Reservation{confirmed("1", "2026-09-01", a[0], a[1])},
			)
			assert.Equal(t, ab, ba, "conflict(%v,%v) must equal conflict(%v,%v)", a, b, b, a)
		}
	}
}

func TestFindConflictScoping(t *testing.T) {
	cand := candidate("1", "2026-09-01", "10:00", "11:00")

	t.Run("other venue ignored", func(t *testing.T) {
		hit, err := FindConflict(cand, []model.Reservation{confirmed("2", "2026-09-01", "10:00", "11:00")})
		require.NoError(t, err)
		assert.Nil(t, hit)
	})

	t.Run("other date ignored", func(t *testing.T) {
		hit, err := FindConflict(cand, []model.Reservation{confirmed("1", "2026-09-02", "10:00", "11:00")})
		require.NoError(t, err)
		assert.Nil(t, hit)
	})

	t.Run("cancelled ignored", func(t *testing.T) {
		r := confirmed("1", "2026-09-01", "10:00", "11:00")
		r.Status = model.StatusCancelled
		hit, err := FindConflict(cand, []model.Reservation{r})
		require.NoError(t, err)
		assert.Nil(t, hit)
	})

	t.Run("pending blocks the slot", func(t *testing.T) {
		r := confirmed("1", "2026-09-01", "10:00", "11:00")
		r.Status = model.StatusPending
		hit, err := FindConflict(cand, []model.Reservation{r})
		require.NoError(t, err)
		assert.NotNil(t, hit)
	})

	t.Run("completed blocks the slot", func(t *testing.T) {
		r := confirmed("1", "2026-09-01", "10:00", "11:00")
		r.Status = model.StatusCompleted
		hit, err := FindConflict(cand, []model.Reservation{r})
		require.NoError(t, err)
		assert.NotNil(t, hit)
	})
}

func TestHasConflictCorruptStoredTime(t *testing.T) {
	r := confirmed("1", "2026-09-01", "garbage", "11:00")
	assert.True(t, HasConflict(candidate("1", "2026-09-01", "10:00", "11:00"), []model.Reservation{r}),
		"unparseable stored times must fail closed")
}

func TestFindConflictDoesNotMutateInputs(t *testing.T) {
	existing := []model.Reservation{confirmed("1", "2026-09-01", "10:00", "12:00")}
	snapshot := existing[0]
	_, err := FindConflict(candidate("1", "2026-09-01", "10:30", "11:30"), existing)
	require.NoError(t, err)
	assert.Equal(t, snapshot, existing[0])
}
