package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	return Candidate{
		VenueID:          "1",
		Purpose:          "team sync",
		Date:             "2026-09-01",
		StartTime:        "10:00",
		EndTime:          "11:00",
		ParticipantCount: 5,
		OrganizerName:    "Dana",
	}
}

func TestValidateAccepts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Candidate)
	}{
		{name: "typical booking", mutate: func(c *Candidate) {}},
		{name: "full business day", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "08:00", "17:00"
		}},
		{name: "starts at opening", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "08:00", "09:00"
		}},
		{name: "ends at closing", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "16:00", "17:00"
		}},
		{name: "exactly at capacity", mutate: func(c *Candidate) {
			c.ParticipantCount = 20
		}},
		{name: "single participant", mutate: func(c *Candidate) {
			c.ParticipantCount = 1
		}},
		{name: "organization optional", mutate: func(c *Candidate) {
			c.OrganizerOrganization = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCandidate()
			tc.mutate(&c)
			assert.NoError(t, Validate(c, 0))
		})
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Candidate)
		reason Reason
	}{
		{name: "missing venue", mutate: func(c *Candidate) { c.VenueID = "" }, reason: ReasonMissingField},
		{name: "missing purpose", mutate: func(c *Candidate) { c.Purpose = "" }, reason: ReasonMissingField},
		{name: "whitespace purpose", mutate: func(c *Candidate) { c.Purpose = "   " }, reason: ReasonMissingField},
		{name: "missing date", mutate: func(c *Candidate) { c.Date = "" }, reason: ReasonMissingField},
		{name: "missing organizer", mutate: func(c *Candidate) { c.OrganizerName = "" }, reason: ReasonMissingField},
		{name: "zero participants", mutate: func(c *Candidate) { c.ParticipantCount = 0 }, reason: ReasonMissingField},
		{name: "negative participants", mutate: func(c *Candidate) { c.ParticipantCount = -3 }, reason: ReasonMissingField},
		{name: "slash date", mutate: func(c *Candidate) { c.Date = "09/01/2026" }, reason: ReasonFormat},
		{name: "unpadded date", mutate: func(c *Candidate) { c.Date = "2026-9-1" }, reason: ReasonFormat},
		{name: "impossible date", mutate: func(c *Candidate) { c.Date = "2026-13-01" }, reason: ReasonFormat},
		{name: "date with time suffix", mutate: func(c *Candidate) { c.Date = "2026-09-01T00:00" }, reason: ReasonFormat},
		{name: "malformed start", mutate: func(c *Candidate) { c.StartTime = "ten" }, reason: ReasonFormat},
		{name: "malformed end", mutate: func(c *Candidate) { c.EndTime = "25:00" }, reason: ReasonFormat},
		{name: "inverted range", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "14:00", "13:00"
		}, reason: ReasonInvertedRange},
		{name: "zero length", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "10:00", "10:00"
		}, reason: ReasonInvertedRange},
		{name: "starts before opening", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "07:59", "09:00"
		}, reason: ReasonOutOfHours},
		{name: "ends after closing", mutate: func(c *Candidate) {
			c.StartTime, c.EndTime = "16:00", "17:01"
		}, reason: ReasonOutOfHours},
		{name: "over global capacity", mutate: func(c *Candidate) {
			c.ParticipantCount = 21
		}, reason: ReasonCapacityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCandidate()
			tc.mutate(&c)
			err := Validate(c, 0)
			require.Error(t, err)
			ve, ok := AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}
}

func TestValidateVenueCapacity(t *testing.T) {
	c := validCandidate()
	c.ParticipantCount = 10

	assert.NoError(t, Validate(c, 10), "headcount equal to venue capacity is fine")

	err := Validate(c, 8)
	require.Error(t, err)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonCapacityExceeded, ve.Reason)

	// A venue larger than the global ceiling does not raise the ceiling.
	c.ParticipantCount = 25
	err = Validate(c, 100)
	require.Error(t, err)
	ve, ok = AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonCapacityExceeded, ve.Reason)
}

func TestValidateOrder(t *testing.T) {
	// A candidate violating several rules reports the earliest check:
	// missing fields before time parsing, parsing before range order.
	c := validCandidate()
	c.Purpose = ""
	c.StartTime = "bogus"
	err := Validate(c, 0)
	require.Error(t, err)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonMissingField, ve.Reason)
	assert.Equal(t, "purpose", ve.Field)

	c = validCandidate()
	c.StartTime = "bogus"
	c.EndTime = "07:00"
	err = Validate(c, 0)
	require.Error(t, err)
	ve, ok = AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonFormat, ve.Reason)
}
