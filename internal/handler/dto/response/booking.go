package response

import (
	"time"

	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// BookingOutcomeResponse is the envelope for admission decisions. A rejection
// is still a 200; Success tells the two apart.
type BookingOutcomeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID *int64 `json:"bookingId,omitempty"`
}

func FromAdmissionResult(result *commands.AdmissionResult) *BookingOutcomeResponse {
	resp := &BookingOutcomeResponse{
		Success: result.Admitted,
		Message: result.Message,
	}
	if result.Admitted && result.BookingID > 0 {
		id := result.BookingID
		resp.BookingID = &id
	}
	return resp
}

type BookingResponse struct {
	ID                int64     `json:"id"`
	RequesterName     string    `json:"requesterName"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	LicenseNo         string    `json:"licenseNo"`
	EngineNo          string    `json:"engineNo"`
	Date              string    `json:"date"`
	MechanicID        int64     `json:"mechanicId"`
	MechanicName      string    `json:"mechanicName"`
	MechanicSpecialty string    `json:"mechanicSpecialty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            int64     `json:"id"`
	RequesterName string    `json:"requesterName"`
	Phone         string    `json:"phone"`
	Date          string    `json:"date"`
	MechanicID    int64     `json:"mechanicId"`
	MechanicName  string    `json:"mechanicName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	responses := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		responses = append(responses, &resp)
	}
	return responses
}
