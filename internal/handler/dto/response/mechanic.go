package response

import (
	"workshop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MechanicResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	DailyCapacity int32  `json:"dailyCapacity"`
}

type MechanicStatsResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	DailyCapacity int32  `json:"dailyCapacity"`
	TotalBookings int64  `json:"totalBookings"`
	TodayBookings int64  `json:"todayBookings"`
}

func FromMechanicViews(views []*queries.MechanicView) []*MechanicResponse {
	responses := make([]*MechanicResponse, 0, len(views))
	for _, view := range views {
		var resp MechanicResponse
		_ = copier.Copy(&resp, view)
		responses = append(responses, &resp)
	}
	return responses
}

func FromMechanicStatsViews(views []*queries.MechanicStatsView) []*MechanicStatsResponse {
	responses := make([]*MechanicStatsResponse, 0, len(views))
	for _, view := range views {
		var resp MechanicStatsResponse
		_ = copier.Copy(&resp, view)
		responses = append(responses, &resp)
	}
	return responses
}
