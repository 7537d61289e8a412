package dto

import "hole-map-service/internal/domain"

// Pointer fields so that 0 (equator, prime meridian) is still "present".
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (c CoordinatesRequest) ToDomain() domain.Coordinates {
	return domain.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
}
