//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"workshop-booking/internal/handler/api"
	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/tests/common/builder"
	"workshop-booking/tests/common/httptest"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MechanicHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMechanicQueries
	handler     *api.MechanicHandler
}

func (s *MechanicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMechanicQueries(s.mockCtrl)
	s.handler = api.NewMechanicHandler(s.mockQueries)

	s.router.GET("/mechanics", s.handler.ListMechanics)
	s.router.GET("/mechanics/stats", s.handler.ListMechanicStats)
}

func (s *MechanicHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMechanicHandlerSuite(t *testing.T) {
	suite.Run(t, new(MechanicHandlerTestSuite))
}

func (s *MechanicHandlerTestSuite) TestListMechanics() {
	s.Run("success: returns 200 with mechanics", func() {
		views := []*queries.MechanicView{
			builder.NewMechanicBuilder().WithID(1).BuildView(),
			builder.NewMechanicBuilder().WithID(2).WithName("Jamal Uddin").WithSpecialty("transmission").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mechanics", nil)

		var response []*resdto.MechanicResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Hasan Mahmud", response[0].Name)
		s.Equal(int32(4), response[0].DailyCapacity)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mechanics", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *MechanicHandlerTestSuite) TestListMechanicStats() {
	s.Run("success: returns 200 with booking counts", func() {
		views := []*queries.MechanicStatsView{
			{ID: 1, Name: "Hasan Mahmud", Specialty: "engine", DailyCapacity: 4, TotalBookings: 12, TodayBookings: 3},
		}
		s.mockQueries.EXPECT().ListWithStats(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mechanics/stats", nil)

		var response []*resdto.MechanicStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(12), response[0].TotalBookings)
		s.Equal(int64(3), response[0].TodayBookings)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().ListWithStats(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mechanics/stats", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
