package dto

import (
	"fmt"
	"math"
)

type DistanceRequest struct {
	From *CoordinatesRequest `json:"from" binding:"required"`
	To   *CoordinatesRequest `json:"to" binding:"required"`
}

type DistanceResponse struct {
	Yards   float64 `json:"yards"`
	Meters  float64 `json:"meters"`
	Display string  `json:"display"`
}

// FormatYards renders a distance rounded to the nearest whole yard, e.g. "245y".
func FormatYards(yards float64) string {
	return fmt.Sprintf("%dy", int(math.Round(yards)))
}
