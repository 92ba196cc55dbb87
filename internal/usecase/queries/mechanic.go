package queries

import (
	"context"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/errs"
)

type MechanicQueries interface {
	List(ctx context.Context) ([]*MechanicView, error)
	ListWithStats(ctx context.Context) ([]*MechanicStatsView, error)
}

type MechanicReadStore interface {
	FindAll(ctx context.Context) ([]*MechanicView, error)
	FindAllWithStats(ctx context.Context, today booking.AppointmentDate) ([]*MechanicStatsView, error)
}

type mechanicQueriesImpl struct {
	store   MechanicReadStore
	clock   clock.Clock
	timeout time.Duration
}

func NewMechanicQueries(store MechanicReadStore, clk clock.Clock, cfg config.Config) MechanicQueries {
	return &mechanicQueriesImpl{
		store:   store,
		clock:   clk,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (q *mechanicQueriesImpl) List(ctx context.Context) ([]*MechanicView, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return views, nil
}

func (q *mechanicQueriesImpl) ListWithStats(ctx context.Context) ([]*MechanicStatsView, error) {
	today := booking.NewAppointmentDate(q.clock.Now())

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	views, err := q.store.FindAllWithStats(ctx, today)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return views, nil
}
