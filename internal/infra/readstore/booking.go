package readstore

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		db: dbtx,
	}
}

const findBookingByIDSQL = `
SELECT b.id, b.requester_name, b.address, b.phone, b.license_no, b.engine_no,
       b.appointment_date, b.mechanic_id, m.name, m.specialty, b.status,
       b.created_at, b.updated_at
FROM bookings b
JOIN mechanics m ON b.mechanic_id = m.id
WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID,
		&view.RequesterName,
		&view.Address,
		&view.Phone,
		&view.LicenseNo,
		&view.EngineNo,
		&date,
		&view.MechanicID,
		&view.MechanicName,
		&view.MechanicSpecialty,
		&view.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.Date = booking.NewAppointmentDate(pgconv.DateFromPgtype(date)).String()
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findAllBookingsSQL = `
SELECT b.id, b.requester_name, b.phone, b.appointment_date, b.mechanic_id, m.name, b.status, b.created_at
FROM bookings b
JOIN mechanics m ON b.mechanic_id = m.id
ORDER BY b.appointment_date DESC, b.created_at DESC
`

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findAllBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

const findBookingsByDateRangeSQL = `
SELECT b.id, b.requester_name, b.phone, b.appointment_date, b.mechanic_id, m.name, b.status, b.created_at
FROM bookings b
JOIN mechanics m ON b.mechanic_id = m.id
WHERE b.appointment_date BETWEEN $1 AND $2
ORDER BY b.appointment_date DESC, b.created_at DESC
`

func (r *BookingReadStore) FindByDateRange(ctx context.Context, start, end booking.AppointmentDate) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByDateRangeSQL,
		pgconv.DateToPgtype(start.Time()),
		pgconv.DateToPgtype(end.Time()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by date range", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

const findBookingSnapshotSQL = `
SELECT id, requester_name, address, phone, license_no, engine_no,
       appointment_date, mechanic_id, status, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (r *BookingReadStore) FindSnapshotByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	var (
		snap      shared.BookingSnapshot
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.RequesterName,
		&snap.Address,
		&snap.Phone,
		&snap.LicenseNo,
		&snap.EngineNo,
		&date,
		&snap.MechanicID,
		&snap.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}

	snap.Date = booking.NewAppointmentDate(pgconv.DateFromPgtype(date))
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const countBookingsSQL = `
SELECT COUNT(*)
FROM bookings
WHERE mechanic_id = $1 AND appointment_date = $2 AND ($3 = 0 OR id <> $3)
`

func (r *BookingReadStore) CountByMechanicAndDate(ctx context.Context, mechanicID int64, date booking.AppointmentDate, excludeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, countBookingsSQL, mechanicID, pgconv.DateToPgtype(date.Time()), excludeID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings for mechanic and date", err)
	}

	return count, nil
}

const existsBookingSQL = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE phone = $1 AND appointment_date = $2 AND ($3 = 0 OR id <> $3)
)
`

func (r *BookingReadStore) ExistsByPhoneAndDate(ctx context.Context, phone string, date booking.AppointmentDate, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, existsBookingSQL, phone, pgconv.DateToPgtype(date.Time()), excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking for phone and date", err)
	}

	return exists, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookingListItems(rows pgxRows) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			date      pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.RequesterName,
			&item.Phone,
			&date,
			&item.MechanicID,
			&item.MechanicName,
			&item.Status,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Date = booking.NewAppointmentDate(pgconv.DateFromPgtype(date)).String()
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}
