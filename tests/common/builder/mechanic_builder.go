//go:build unit || e2e

package builder

import (
	"workshop-booking/internal/domain/mechanic"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"
)

type MechanicBuilder struct {
	id            int64
	name          string
	specialty     string
	dailyCapacity int32
}

func NewMechanicBuilder() *MechanicBuilder {
	return &MechanicBuilder{
		id:            1,
		name:          "Hasan Mahmud",
		specialty:     "engine",
		dailyCapacity: 4,
	}
}

func (b *MechanicBuilder) WithID(id int64) *MechanicBuilder {
	b.id = id
	return b
}

func (b *MechanicBuilder) WithName(name string) *MechanicBuilder {
	b.name = name
	return b
}

func (b *MechanicBuilder) WithSpecialty(specialty string) *MechanicBuilder {
	b.specialty = specialty
	return b
}

func (b *MechanicBuilder) WithDailyCapacity(capacity int32) *MechanicBuilder {
	b.dailyCapacity = capacity
	return b
}

func (b *MechanicBuilder) BuildDomain() (*mechanic.Mechanic, error) {
	return mechanic.NewMechanic(b.id, b.name, b.specialty, b.dailyCapacity)
}

func (b *MechanicBuilder) BuildSnapshot() *shared.MechanicSnapshot {
	return &shared.MechanicSnapshot{
		ID:            b.id,
		Name:          b.name,
		Specialty:     b.specialty,
		DailyCapacity: b.dailyCapacity,
	}
}

func (b *MechanicBuilder) BuildView() *queries.MechanicView {
	return &queries.MechanicView{
		ID:            b.id,
		Name:          b.name,
		Specialty:     b.specialty,
		DailyCapacity: b.dailyCapacity,
	}
}
