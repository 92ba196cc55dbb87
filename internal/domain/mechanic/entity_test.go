//go:build unit

package mechanic_test

import (
	"strings"
	"testing"

	"workshop-booking/internal/domain/mechanic"
	"workshop-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMechanic(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewMechanicBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.ID())
		assert.Equal(t, "Hasan Mahmud", actual.Name())
		assert.Equal(t, "engine", actual.Specialty())
		assert.Equal(t, int32(4), actual.DailyCapacity())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.MechanicBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.MechanicBuilder) { b.WithName("") },
				errIs:  mechanic.ErrEmptyMechanicName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.MechanicBuilder) { b.WithName("   ") },
				errIs:  mechanic.ErrEmptyMechanicName,
			},
			{
				name:   "name at maximum length",
				mutate: func(b *builder.MechanicBuilder) { b.WithName(strings.Repeat("a", mechanic.MaxMechanicNameLength)) },
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.MechanicBuilder) { b.WithName(strings.Repeat("a", mechanic.MaxMechanicNameLength+1)) },
				errIs:  mechanic.ErrMechanicNameTooLong,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewMechanicBuilder()
				tc.mutate(b)
				actual, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("capacity validation", func(t *testing.T) {
		_, err := builder.NewMechanicBuilder().WithDailyCapacity(0).BuildDomain()
		require.ErrorIs(t, err, mechanic.ErrNonPositiveCapacity)

		_, err = builder.NewMechanicBuilder().WithDailyCapacity(-2).BuildDomain()
		require.ErrorIs(t, err, mechanic.ErrNonPositiveCapacity)
	})
}

func TestHasCapacityFor(t *testing.T) {
	m, err := builder.NewMechanicBuilder().WithDailyCapacity(4).BuildDomain()
	require.NoError(t, err)

	assert.True(t, m.HasCapacityFor(0))
	assert.True(t, m.HasCapacityFor(3))
	assert.False(t, m.HasCapacityFor(4))
	assert.False(t, m.HasCapacityFor(5))
}
