package mechanic

import (
	"errors"
	"strings"
)

var (
	ErrEmptyMechanicName   = errors.New("mechanic name cannot be empty")
	ErrMechanicNameTooLong = errors.New("mechanic name is too long (max 255 characters)")
	ErrNonPositiveCapacity = errors.New("daily capacity must be positive")
)

const (
	MaxMechanicNameLength = 255
)

type Mechanic struct {
	id            int64
	name          string
	specialty     string
	dailyCapacity int32
}

func NewMechanic(id int64, name, specialty string, dailyCapacity int32) (*Mechanic, error) {
	if err := validateMechanicName(name); err != nil {
		return nil, err
	}

	if dailyCapacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Mechanic{
		id:            id,
		name:          strings.TrimSpace(name),
		specialty:     strings.TrimSpace(specialty),
		dailyCapacity: dailyCapacity,
	}, nil
}

// HasCapacityFor reports whether one more booking fits on a day that already
// holds booked appointments.
func (m *Mechanic) HasCapacityFor(booked int64) bool {
	return booked < int64(m.dailyCapacity)
}

func validateMechanicName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyMechanicName
	}
	if len(name) > MaxMechanicNameLength {
		return ErrMechanicNameTooLong
	}
	return nil
}

func (m *Mechanic) ID() int64            { return m.id }
func (m *Mechanic) Name() string         { return m.name }
func (m *Mechanic) Specialty() string    { return m.specialty }
func (m *Mechanic) DailyCapacity() int32 { return m.dailyCapacity }
