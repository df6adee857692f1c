package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "zero padded", in: "08:30", want: 8*60 + 30},
		{name: "no leading zero", in: "8:30", want: 8*60 + 30},
		{name: "midnight", in: "00:00", want: 0},
		{name: "end of day", in: "23:59", want: 23*60 + 59},
		{name: "missing colon", in: "0830", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "12:60", wantErr: true},
		{name: "single digit minutes", in: "12:5", wantErr: true},
		{name: "non numeric", in: "ab:cd", wantErr: true},
		{name: "negative hour", in: "-1:30", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				ve, ok := AsValidation(err)
				require.True(t, ok, "parse errors must be validation errors")
				assert.Equal(t, ReasonFormat, ve.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, s := range []string{"08:00", "09:05", "12:30", "17:00"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(m))
	}
	// Non-canonical input normalizes to the padded form.
	m, err := ParseClock("8:05")
	require.NoError(t, err)
	assert.Equal(t, "08:05", FormatClock(m))
}

func TestIsWithinBusinessHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "exact open to close", start: "08:00", end: "17:00", want: true},
		{name: "inside window", start: "10:00", end: "11:30", want: true},
		{name: "one minute early", start: "07:59", end: "09:00", want: false},
		{name: "one minute late", start: "16:00", end: "17:01", want: false},
		{name: "entirely before open", start: "06:00", end: "07:00", want: false},
		{name: "entirely after close", start: "18:00", end: "19:00", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseClock(tc.start)
			require.NoError(t, err)
			e, err := ParseClock(tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, IsWithinBusinessHours(s, e))
		})
	}
}

func TestIsOrderedRange(t *testing.T) {
	assert.True(t, IsOrderedRange(9*60, 10*60))
	assert.False(t, IsOrderedRange(10*60, 10*60), "zero-length ranges are invalid")
	assert.False(t, IsOrderedRange(11*60, 10*60))
}
