package shared

import (
	"context"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
	// LockAdmissionKeys serializes this transaction against concurrent
	// admissions on the same keys. Keys are locked in sorted order.
	LockAdmissionKeys(ctx context.Context, keys ...string) error
	DB() db.DBTX
}

// CommandReads re-reads current store state for admission decisions. Every
// decision consults the store; no snapshot survives across calls.
type CommandReads interface {
	MechanicByID(ctx context.Context, id int64) (*MechanicSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	// CountBookings counts bookings for (mechanicID, date); excludeID > 0
	// leaves that record out of the count.
	CountBookings(ctx context.Context, mechanicID int64, date booking.AppointmentDate, excludeID int64) (int64, error)
	// HasBookingOnDate reports whether the requester already holds a booking
	// on date; excludeID > 0 leaves that record out.
	HasBookingOnDate(ctx context.Context, phone string, date booking.AppointmentDate, excludeID int64) (bool, error)
}

type MechanicSnapshot struct {
	ID            int64
	Name          string
	Specialty     string
	DailyCapacity int32
}

type BookingSnapshot struct {
	ID            int64
	RequesterName string
	Address       string
	Phone         string
	LicenseNo     string
	EngineNo      string
	Date          booking.AppointmentDate
	MechanicID    int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, b *booking.Booking) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}
