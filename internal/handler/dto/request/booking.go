package request

import (
	"workshop-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	RequesterName string `json:"requester_name" binding:"required,max=255"`
	Address       string `json:"address" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"required,max=255"`
	LicenseNo     string `json:"license_no" binding:"required,max=255"`
	EngineNo      string `json:"engine_no" binding:"required,max=255"`
	Date          string `json:"date" binding:"required"`
	MechanicID    int64  `json:"mechanic_id" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RequesterName: r.RequesterName,
		Address:       r.Address,
		Phone:         r.Phone,
		LicenseNo:     r.LicenseNo,
		EngineNo:      r.EngineNo,
		Date:          r.Date,
		MechanicID:    r.MechanicID,
	}
}

type UpdateBookingRequest struct {
	RequesterName *string `json:"requester_name" binding:"omitempty,max=255"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=255"`
	LicenseNo     *string `json:"license_no" binding:"omitempty,max=255"`
	EngineNo      *string `json:"engine_no" binding:"omitempty,max=255"`
	Date          *string `json:"date" binding:"omitempty"`
	MechanicID    *int64  `json:"mechanic_id" binding:"omitempty"`
	Status        *string `json:"status" binding:"omitempty,max=255"`
}

func (r UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	return commands.UpdateBookingInput{
		RequesterName: r.RequesterName,
		Address:       r.Address,
		Phone:         r.Phone,
		LicenseNo:     r.LicenseNo,
		EngineNo:      r.EngineNo,
		Date:          r.Date,
		MechanicID:    r.MechanicID,
		Status:        r.Status,
	}
}
