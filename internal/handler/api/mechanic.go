package api

import (
	"net/http"

	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MechanicHandler struct {
	mechanicQueries queries.MechanicQueries
}

func NewMechanicHandler(mechanicQueries queries.MechanicQueries) *MechanicHandler {
	return &MechanicHandler{
		mechanicQueries: mechanicQueries,
	}
}

// @Summary List mechanics
// @Description List all mechanics available for booking
// @Tags mechanics
// @Produce json
// @Success 200 {array} resdto.MechanicResponse
// @Failure 500 {object} map[string]string
// @Router /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	views, err := h.mechanicQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMechanicViews(views))
}

// @Summary List mechanics with booking stats
// @Description List all mechanics with their total and today's booking counts
// @Tags mechanics
// @Produce json
// @Success 200 {array} resdto.MechanicStatsResponse
// @Failure 500 {object} map[string]string
// @Router /mechanics/stats [get]
func (h *MechanicHandler) ListMechanicStats(c *gin.Context) {
	views, err := h.mechanicQueries.ListWithStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMechanicStatsViews(views))
}
