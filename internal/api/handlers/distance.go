package handlers

import (
	"net/http"

	"hole-map-service/internal/api/dto"
	"hole-map-service/internal/geo"
	"hole-map-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type DistanceHandler struct {
	Logger zerolog.Logger
}

// Distance returns the great-circle distance between two arbitrary points.
func (h *DistanceHandler) Distance(c *gin.Context) {
	var err error
	defer obs.Time(c.Request.Context(), h.Logger, "distance")(&err)

	var req dto.DistanceRequest
	if err = decodeJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	from, to := req.From.ToDomain(), req.To.ToDomain()
	meters := geo.DistanceMeters(from, to)
	yards := geo.DistanceYards(from, to)
	if err = rejectNotFinite(c, meters, yards); err != nil {
		return
	}

	c.JSON(http.StatusOK, dto.DistanceResponse{
		Yards:   yards,
		Meters:  meters,
		Display: dto.FormatYards(yards),
	})
}
