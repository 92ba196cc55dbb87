//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/tests/common/builder"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingQueries(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return queries.NewBookingQueries(store, config.NewTestConfig()), store
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the view", func(t *testing.T) {
		svc, store := newBookingQueries(t)
		want := builder.NewBookingBuilder().WithID(7).BuildView()
		store.EXPECT().FindByID(gomock.Any(), int64(7)).Return(want, nil)

		got, err := svc.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		svc, store := newBookingQueries(t)
		store.EXPECT().FindByID(gomock.Any(), int64(999)).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound))

		_, err := svc.GetByID(ctx, 999)
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		svc, store := newBookingQueries(t)
		store.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		_, err := svc.GetByID(ctx, 7)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestListAll(t *testing.T) {
	svc, store := newBookingQueries(t)
	want := []*queries.BookingListItem{
		builder.NewBookingBuilder().WithID(1).BuildListItem(),
		builder.NewBookingBuilder().WithID(2).WithDate("2026-09-16").BuildListItem(),
	}
	store.EXPECT().FindAll(gomock.Any()).Return(want, nil)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListByDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("passes parsed bounds to the store", func(t *testing.T) {
		svc, store := newBookingQueries(t)
		start, _ := booking.ParseAppointmentDate("2026-09-01")
		end, _ := booking.ParseAppointmentDate("2026-09-30")
		want := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		store.EXPECT().FindByDateRange(gomock.Any(), start, end).Return(want, nil)

		got, err := svc.ListByDateRange(ctx, "2026-09-01", "2026-09-30")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("single-day range is valid", func(t *testing.T) {
		svc, store := newBookingQueries(t)
		day, _ := booking.ParseAppointmentDate("2026-09-15")
		store.EXPECT().FindByDateRange(gomock.Any(), day, day).Return(nil, nil)

		_, err := svc.ListByDateRange(ctx, "2026-09-15", "2026-09-15")
		require.NoError(t, err)
	})

	t.Run("end before start never reaches the store", func(t *testing.T) {
		svc, _ := newBookingQueries(t)

		_, err := svc.ListByDateRange(ctx, "2026-09-30", "2026-09-01")
		require.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("malformed bounds fail validation", func(t *testing.T) {
		svc, _ := newBookingQueries(t)

		_, err := svc.ListByDateRange(ctx, "2026/09/01", "2026-09-30")
		require.ErrorIs(t, err, errs.ErrDomainValidation)

		_, err = svc.ListByDateRange(ctx, "2026-09-01", "next week")
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
