package dto

import "hole-map-service/internal/domain"

type HoleRequest struct {
	HoleNumber int                 `json:"hole_number" binding:"omitempty,min=1"`
	Par        int                 `json:"par" binding:"omitempty,min=1"`
	Handicap   int                 `json:"handicap" binding:"omitempty,min=1"`
	TeeColor   string              `json:"tee_color" binding:"omitempty,oneof=White Blue Red"`
	Yardage    int                 `json:"yardage" binding:"omitempty,min=1"`
	Tee        *CoordinatesRequest `json:"tee" binding:"required"`
	Green      *CoordinatesRequest `json:"green" binding:"required"`
}

func (h HoleRequest) ToDomain() domain.HoleInfo {
	return domain.HoleInfo{
		HoleNumber: h.HoleNumber,
		Par:        h.Par,
		Handicap:   h.Handicap,
		TeeColor:   domain.TeeColor(h.TeeColor),
		Yardage:    h.Yardage,
		Tee:        h.Tee.ToDomain(),
		Green:      h.Green.ToDomain(),
	}
}

type HoleDistancesRequest struct {
	Hole   *HoleRequest        `json:"hole" binding:"required"`
	Target *CoordinatesRequest `json:"target"`
}

type DistancesDisplay struct {
	Target   *string `json:"target"`
	Approach string  `json:"approach"`
}

type HoleDistancesResponse struct {
	HoleNumber            int              `json:"hole_number,omitempty"`
	TargetDistanceYards   *float64         `json:"target_distance_yards"`
	ApproachDistanceYards float64          `json:"approach_distance_yards"`
	TargetLabel           string           `json:"target_label"`
	ApproachLabel         string           `json:"approach_label"`
	Display               DistancesDisplay `json:"display"`
}

func NewHoleDistancesResponse(hole domain.HoleInfo, d domain.DerivedDistances) HoleDistancesResponse {
	res := HoleDistancesResponse{
		HoleNumber:            hole.HoleNumber,
		ApproachDistanceYards: d.ApproachDistanceYards,
		TargetLabel:           d.TargetLabel,
		ApproachLabel:         d.ApproachLabel,
		Display: DistancesDisplay{
			Approach: FormatYards(d.ApproachDistanceYards),
		},
	}

	if yards, ok := d.TargetDistance(); ok {
		display := FormatYards(yards)
		res.TargetDistanceYards = &yards
		res.Display.Target = &display
	}

	return res
}

type HoleStepResponse struct {
	HoleNumber int  `json:"hole_number"`
	Changed    bool `json:"changed"`
}
