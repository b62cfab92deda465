package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	testCases := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "morning and night of the same day",
			a:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "two minutes apart across midnight",
			a:    time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day number in another month",
			a:    time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "other location is converted first",
			a:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 2, 8, 0, 0, 0, time.FixedZone("UTC+10", 10*60*60)),
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SameDay(tc.a, tc.b))
		})
	}
}

func TestStartAndEndOfWeek(t *testing.T) {
	// Wednesday
	ref := time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC)

	start := StartOfWeek(ref)
	end := EndOfWeek(ref)

	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.True(t, SameDay(end, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 23, end.Hour())
}

func TestStartOfWeek_OnSunday(t *testing.T) {
	sunday := time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC))

	require.Len(t, days, DaysPerWeek)
	assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), days[6])
}

func TestAddWeeks(t *testing.T) {
	ref := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), AddWeeks(ref, 1))
	assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), AddWeeks(ref, -1))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-01", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("01/03/2024", time.UTC)
	assert.Error(t, err)
}

func TestFormatLong(t *testing.T) {
	assert.Equal(t, "March 1st, 2024", FormatLong(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "March 2nd, 2024", FormatLong(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "March 13th, 2024", FormatLong(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "March 23rd, 2024", FormatLong(time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC)))
}
