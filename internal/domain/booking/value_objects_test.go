//go:build unit

package booking_test

import (
	"testing"
	"time"

	"workshop-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentDate(t *testing.T) {
	t.Run("accepts plain calendar day", func(t *testing.T) {
		d, err := booking.ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := []string{
			"",
			"2026/09/15",
			"15-09-2026",
			"2026-9-15",
			"2026-13-01",
			"2026-02-30",
			"2026-09-15T10:00:00Z",
			"2026-09-15 10:00",
			"not-a-date",
		}
		for _, in := range cases {
			t.Run(in, func(t *testing.T) {
				_, err := booking.ParseAppointmentDate(in)
				require.ErrorIs(t, err, booking.ErrInvalidDate)
			})
		}
	})
}

func TestAppointmentDate(t *testing.T) {
	t.Run("truncates time components", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		d := booking.NewAppointmentDate(time.Date(2026, 9, 15, 23, 45, 1, 0, loc))
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("equality ignores how the date was made", func(t *testing.T) {
		parsed, err := booking.ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)
		fromTime := booking.NewAppointmentDate(time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC))
		assert.True(t, parsed.Equal(fromTime))
	})

	t.Run("ordering", func(t *testing.T) {
		earlier, err := booking.ParseAppointmentDate("2026-09-14")
		require.NoError(t, err)
		later, err := booking.ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)

		assert.True(t, earlier.Before(later))
		assert.False(t, later.Before(earlier))
		assert.False(t, earlier.Before(earlier))
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var d booking.AppointmentDate
		assert.True(t, d.IsZero())

		parsed, err := booking.ParseAppointmentDate("2026-09-15")
		require.NoError(t, err)
		assert.False(t, parsed.IsZero())
	})
}
