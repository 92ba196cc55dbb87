package booking

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("date must be a calendar day in YYYY-MM-DD format")

// AppointmentDate is an opaque calendar day. It carries no time component and
// no timezone semantics; two dates are equal iff their year/month/day match.
type AppointmentDate struct {
	t time.Time
}

// ParseAppointmentDate accepts strictly YYYY-MM-DD. Values carrying a time
// component are rejected rather than normalized.
func ParseAppointmentDate(s string) (AppointmentDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return AppointmentDate{}, ErrInvalidDate
	}
	return NewAppointmentDate(t), nil
}

// NewAppointmentDate truncates t to its calendar day.
func NewAppointmentDate(t time.Time) AppointmentDate {
	return AppointmentDate{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d AppointmentDate) String() string {
	return d.t.Format(time.DateOnly)
}

func (d AppointmentDate) Time() time.Time {
	return d.t
}

func (d AppointmentDate) IsZero() bool {
	return d.t.IsZero()
}

func (d AppointmentDate) Equal(other AppointmentDate) bool {
	return d.t.Equal(other.t)
}

func (d AppointmentDate) Before(other AppointmentDate) bool {
	return d.t.Before(other.t)
}
