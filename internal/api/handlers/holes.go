package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"hole-map-service/internal/api/dto"
	"hole-map-service/internal/domain"
	"hole-map-service/internal/platform/obs"
	"hole-map-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HoleHandler exposes the hole distance model and hole navigation.
// It holds no per-hole state: each request carries its own geometry and target.
type HoleHandler struct {
	Logger zerolog.Logger
}

// Distances derives target and approach distances for one hole.
func (h *HoleHandler) Distances(c *gin.Context) {
	var err error
	defer obs.Time(c.Request.Context(), h.Logger, "holes.distances")(&err)

	var req dto.HoleDistancesRequest
	if err = decodeJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	session := services.NewHoleSession(req.Hole.ToDomain())
	if req.Target != nil {
		session.SetTarget(req.Target.ToDomain())
	}

	d := session.Distances()
	targetYards, _ := d.TargetDistance()
	if err = rejectNotFinite(c, targetYards, d.ApproachDistanceYards); err != nil {
		return
	}

	c.JSON(http.StatusOK, dto.NewHoleDistancesResponse(session.Hole(), d))
}

// maxHoleNumber bounds the path parameter well above any real course.
const maxHoleNumber = 999

// Step returns the neighbouring hole number in the requested direction.
func (h *HoleHandler) Step(c *gin.Context) {
	current, err := strconv.Atoi(c.Param("number"))
	if err != nil || current < 1 || current > maxHoleNumber {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("hole number must be between 1 and %d", maxHoleNumber))
		return
	}

	direction, err := strconv.Atoi(c.Query("direction"))
	if err != nil || (direction != -1 && direction != 1) {
		writeError(c, http.StatusBadRequest, "direction must be -1 or 1")
		return
	}

	next, changed := domain.StepHole(current, direction)
	c.JSON(http.StatusOK, dto.HoleStepResponse{HoleNumber: next, Changed: changed})
}
