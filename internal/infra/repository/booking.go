package repository

import (
	"context"
	"errors"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// BookingRepository is the write side of the booking store. It mutates single
// records only; cross-record invariants are the admission layer's job.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (requester_name, address, phone, license_no, engine_no, appointment_date, mechanic_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.RequesterName(),
		b.Address(),
		b.Phone(),
		b.LicenseNo(),
		b.EngineNo(),
		pgconv.DateToPgtype(b.Date().Time()),
		b.MechanicID(),
		b.Status(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create booking", err)
	}

	return id, nil
}

const updateBookingSQL = `
UPDATE bookings
SET requester_name = $1, address = $2, phone = $3, license_no = $4, engine_no = $5,
    appointment_date = $6, mechanic_id = $7, status = $8, updated_at = now()
WHERE id = $9
`

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, id int64, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, updateBookingSQL,
		b.RequesterName(),
		b.Address(),
		b.Phone(),
		b.LicenseNo(),
		b.EngineNo(),
		pgconv.DateToPgtype(b.Date().Time()),
		b.MechanicID(),
		b.Status(),
		id,
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
