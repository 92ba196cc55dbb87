package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyRequesterName = errors.New("requester name cannot be empty")
	ErrEmptyAddress       = errors.New("address cannot be empty")
	ErrEmptyPhone         = errors.New("phone cannot be empty")
	ErrEmptyLicenseNo     = errors.New("license number cannot be empty")
	ErrEmptyEngineNo      = errors.New("engine number cannot be empty")
	ErrMissingDate        = errors.New("appointment date is required")
	ErrInvalidMechanicID  = errors.New("mechanic id must be positive")
	ErrFieldTooLong       = errors.New("field is too long (max 255 characters)")
)

const (
	MaxFieldLength = 255

	// DefaultStatus labels a freshly admitted booking. Status is an opaque
	// label, not a workflow state: callers may overwrite it freely.
	DefaultStatus = "pending"
)

type Booking struct {
	id            int64
	requesterName string
	address       string
	phone         string
	licenseNo     string
	engineNo      string
	date          AppointmentDate
	mechanicID    int64
	status        string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	requesterName, address, phone, licenseNo, engineNo string,
	date AppointmentDate,
	mechanicID int64,
) (*Booking, error) {
	fields := []struct {
		value string
		empty error
	}{
		{requesterName, ErrEmptyRequesterName},
		{address, ErrEmptyAddress},
		{phone, ErrEmptyPhone},
		{licenseNo, ErrEmptyLicenseNo},
		{engineNo, ErrEmptyEngineNo},
	}
	for _, f := range fields {
		trimmed := strings.TrimSpace(f.value)
		if trimmed == "" {
			return nil, f.empty
		}
		if len(trimmed) > MaxFieldLength {
			return nil, ErrFieldTooLong
		}
	}

	if date.IsZero() {
		return nil, ErrMissingDate
	}

	if mechanicID <= 0 {
		return nil, ErrInvalidMechanicID
	}

	return &Booking{
		requesterName: strings.TrimSpace(requesterName),
		address:       strings.TrimSpace(address),
		phone:         strings.TrimSpace(phone),
		licenseNo:     strings.TrimSpace(licenseNo),
		engineNo:      strings.TrimSpace(engineNo),
		date:          date,
		mechanicID:    mechanicID,
		status:        DefaultStatus,
	}, nil
}

func ReconstructBooking(
	id int64,
	requesterName, address, phone, licenseNo, engineNo string,
	date AppointmentDate,
	mechanicID int64,
	status string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		requesterName: requesterName,
		address:       address,
		phone:         phone,
		licenseNo:     licenseNo,
		engineNo:      engineNo,
		date:          date,
		mechanicID:    mechanicID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ChangeStatus overwrites the status label. Blank labels keep the current one.
func (b *Booking) ChangeStatus(label string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	b.status = trimmed
}

func (b *Booking) ID() int64             { return b.id }
func (b *Booking) RequesterName() string { return b.requesterName }
func (b *Booking) Address() string       { return b.address }
func (b *Booking) Phone() string         { return b.phone }
func (b *Booking) LicenseNo() string     { return b.licenseNo }
func (b *Booking) EngineNo() string      { return b.engineNo }
func (b *Booking) Date() AppointmentDate { return b.date }
func (b *Booking) MechanicID() int64     { return b.mechanicID }
func (b *Booking) Status() string        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
