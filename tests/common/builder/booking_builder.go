//go:build unit || e2e

package builder

import (
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/handler/dto/request"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"
)

// BookingBuilder assembles booking test data with sensible defaults; tests
// override only the fields they exercise.
type BookingBuilder struct {
	id            int64
	requesterName string
	address       string
	phone         string
	licenseNo     string
	engineNo      string
	date          string
	mechanicID    int64
	status        string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:            1,
		requesterName: "Karim Ahmed",
		address:       "12 Station Road, Dhaka",
		phone:         "01711000001",
		licenseNo:     "DHA-GA-11-2233",
		engineNo:      "EN-449201",
		date:          "2026-09-15",
		mechanicID:    1,
		status:        booking.DefaultStatus,
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithRequesterName(name string) *BookingBuilder {
	b.requesterName = name
	return b
}

func (b *BookingBuilder) WithAddress(address string) *BookingBuilder {
	b.address = address
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.phone = phone
	return b
}

func (b *BookingBuilder) WithLicenseNo(licenseNo string) *BookingBuilder {
	b.licenseNo = licenseNo
	return b
}

func (b *BookingBuilder) WithEngineNo(engineNo string) *BookingBuilder {
	b.engineNo = engineNo
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.date = date
	return b
}

func (b *BookingBuilder) WithMechanicID(mechanicID int64) *BookingBuilder {
	b.mechanicID = mechanicID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseAppointmentDate(b.date)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(
		b.requesterName,
		b.address,
		b.phone,
		b.licenseNo,
		b.engineNo,
		date,
		b.mechanicID,
	)
	if err != nil {
		return nil, err
	}
	entity.ChangeStatus(b.status)

	return entity, nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		RequesterName: b.requesterName,
		Address:       b.address,
		Phone:         b.phone,
		LicenseNo:     b.licenseNo,
		EngineNo:      b.engineNo,
		Date:          b.date,
		MechanicID:    b.mechanicID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	date, _ := booking.ParseAppointmentDate(b.date)
	now := time.Now()
	return &shared.BookingSnapshot{
		ID:            b.id,
		RequesterName: b.requesterName,
		Address:       b.address,
		Phone:         b.phone,
		LicenseNo:     b.licenseNo,
		EngineNo:      b.engineNo,
		Date:          date,
		MechanicID:    b.mechanicID,
		Status:        b.status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:                b.id,
		RequesterName:     b.requesterName,
		Address:           b.address,
		Phone:             b.phone,
		LicenseNo:         b.licenseNo,
		EngineNo:          b.engineNo,
		Date:              b.date,
		MechanicID:        b.mechanicID,
		MechanicName:      "Hasan Mahmud",
		MechanicSpecialty: "engine",
		Status:            b.status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.id,
		RequesterName: b.requesterName,
		Phone:         b.phone,
		Date:          b.date,
		MechanicID:    b.mechanicID,
		MechanicName:  "Hasan Mahmud",
		Status:        b.status,
		CreatedAt:     time.Now(),
	}
}
