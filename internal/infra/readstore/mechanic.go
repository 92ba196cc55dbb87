package readstore

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"
)

type MechanicReadStore struct {
	db db.DBTX
}

func NewMechanicReadStore(dbtx db.DBTX) *MechanicReadStore {
	return &MechanicReadStore{
		db: dbtx,
	}
}

const findAllMechanicsSQL = `
SELECT id, name, specialty, daily_capacity
FROM mechanics
ORDER BY name
`

func (r *MechanicReadStore) FindAll(ctx context.Context) ([]*queries.MechanicView, error) {
	rows, err := r.db.Query(ctx, findAllMechanicsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all mechanics", err)
	}
	defer rows.Close()

	var result []*queries.MechanicView
	for rows.Next() {
		var view queries.MechanicView
		if err := rows.Scan(&view.ID, &view.Name, &view.Specialty, &view.DailyCapacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan mechanic row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate mechanic rows", err)
	}

	return result, nil
}

const findMechanicByIDSQL = `
SELECT id, name, specialty, daily_capacity
FROM mechanics
WHERE id = $1
`

func (r *MechanicReadStore) FindByID(ctx context.Context, id int64) (*shared.MechanicSnapshot, error) {
	var snap shared.MechanicSnapshot
	err := r.db.QueryRow(ctx, findMechanicByIDSQL, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Specialty,
		&snap.DailyCapacity,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mechanic not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find mechanic by ID", err)
	}

	return &snap, nil
}

const findMechanicsWithStatsSQL = `
SELECT m.id, m.name, m.specialty, m.daily_capacity,
       COUNT(b.id) AS total_bookings,
       COUNT(b.id) FILTER (WHERE b.appointment_date = $1) AS today_bookings
FROM mechanics m
LEFT JOIN bookings b ON m.id = b.mechanic_id
GROUP BY m.id
ORDER BY m.name
`

func (r *MechanicReadStore) FindAllWithStats(ctx context.Context, today booking.AppointmentDate) ([]*queries.MechanicStatsView, error) {
	rows, err := r.db.Query(ctx, findMechanicsWithStatsSQL, pgconv.DateToPgtype(today.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find mechanics with stats", err)
	}
	defer rows.Close()

	var result []*queries.MechanicStatsView
	for rows.Next() {
		var view queries.MechanicStatsView
		if err := rows.Scan(
			&view.ID,
			&view.Name,
			&view.Specialty,
			&view.DailyCapacity,
			&view.TotalBookings,
			&view.TodayBookings,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan mechanic stats row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate mechanic stats rows", err)
	}

	return result, nil
}
