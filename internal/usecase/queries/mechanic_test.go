//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/tests/common/builder"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMechanicList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMechanicReadStore(ctrl)
	svc := queries.NewMechanicQueries(store, clock.NewRealClock(), config.NewTestConfig())

	want := []*queries.MechanicView{
		builder.NewMechanicBuilder().WithID(1).BuildView(),
		builder.NewMechanicBuilder().WithID(2).WithName("Jamal Uddin").WithSpecialty("transmission").BuildView(),
	}
	store.EXPECT().FindAll(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMechanicListWithStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMechanicReadStore(ctrl)

	// stats are computed against the clock's current day
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	svc := queries.NewMechanicQueries(store, clock.NewMockClock(now), config.NewTestConfig())

	today := booking.NewAppointmentDate(now)
	want := []*queries.MechanicStatsView{
		{ID: 1, Name: "Hasan Mahmud", Specialty: "engine", DailyCapacity: 4, TotalBookings: 12, TodayBookings: 3},
	}
	store.EXPECT().FindAllWithStats(gomock.Any(), today).Return(want, nil)

	got, err := svc.ListWithStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
