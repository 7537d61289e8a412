package domain

import "math"

type TeeColor string

const (
	TeeWhite TeeColor = "White"
	TeeBlue  TeeColor = "Blue"
	TeeRed   TeeColor = "Red"
)

// Fixed geometry of one hole: where it starts and where it ends.
type HoleGeometry struct {
	Tee   Coordinates
	Green Coordinates
}

// Describes a single hole as supplied by the course-data lookup.
// A HoleInfo is immutable for the lifetime of a hole view.
type HoleInfo struct {
	HoleNumber int
	Par        int
	Handicap   int
	TeeColor   TeeColor
	Yardage    int
	Tee        Coordinates
	Green      Coordinates
}

func (h HoleInfo) Geometry() HoleGeometry {
	return HoleGeometry{Tee: h.Tee, Green: h.Green}
}

// StepHole moves from current by direction and never goes below hole 1.
// changed is false when the move is a no-op (stepping back from hole 1, or
// forward from the largest representable hole number).
func StepHole(current, direction int) (next int, changed bool) {
	switch {
	case direction > 0 && current > math.MaxInt-direction:
		return current, false
	case direction < 0 && current < math.MinInt-direction:
		return 1, true
	}
	next = max(1, current+direction)
	return next, next != current
}
