package queries

import (
	"time"
)

// Read models (DTO for read side). Dates are wire-format calendar days
// (YYYY-MM-DD); the read side never needs date arithmetic.
type BookingView struct {
	ID                int64     `json:"id"`
	RequesterName     string    `json:"requester_name"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	LicenseNo         string    `json:"license_no"`
	EngineNo          string    `json:"engine_no"`
	Date              string    `json:"date"`
	MechanicID        int64     `json:"mechanic_id"`
	MechanicName      string    `json:"mechanic_name"`
	MechanicSpecialty string    `json:"mechanic_specialty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            int64     `json:"id"`
	RequesterName string    `json:"requester_name"`
	Phone         string    `json:"phone"`
	Date          string    `json:"date"`
	MechanicID    int64     `json:"mechanic_id"`
	MechanicName  string    `json:"mechanic_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type MechanicView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	DailyCapacity int32  `json:"daily_capacity"`
}

type MechanicStatsView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	DailyCapacity int32  `json:"daily_capacity"`
	TotalBookings int64  `json:"total_bookings"`
	TodayBookings int64  `json:"today_bookings"`
}
