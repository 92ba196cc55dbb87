package queries

import (
	"context"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/errs"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingListItem, error)
	ListByDateRange(ctx context.Context, start, end string) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
	FindByDateRange(ctx context.Context, start, end booking.AppointmentDate) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	timeout time.Duration
}

func NewBookingQueries(store BookingReadStore, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{
		store:   store,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	items, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return items, nil
}

func (q *bookingQueriesImpl) ListByDateRange(ctx context.Context, start, end string) ([]*BookingListItem, error) {
	startDate, err := booking.ParseAppointmentDate(start)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	endDate, err := booking.ParseAppointmentDate(end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if endDate.Before(startDate) {
		return nil, errs.ErrInvalidDateRange
	}

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	items, err := q.store.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return items, nil
}
