package services

import (
	"fmt"
	"math"

	"hole-map-service/internal/domain"
	"hole-map-service/internal/geo"
)

const (
	// PlaysLikeFactor is a fixed 5% reduction standing in for wind and elevation.
	// It is a placeholder, not a physical model.
	PlaysLikeFactor = 0.95
	// SuggestedClub is shown next to the plays-like yardage. Static placeholder.
	SuggestedClub = "2W"

	TargetPrompt          = "Long press to set a target"
	ApproachLabelTarget   = "To green"
	ApproachLabelNoTarget = "Tee to green"
)

// DeriveHoleDistances computes the distances the hole view displays.
//
// Without a target the approach collapses to the full tee-to-green distance.
// Every call re-derives from scratch; nothing is cached and the inputs are
// never modified.
func DeriveHoleDistances(geometry domain.HoleGeometry, target domain.Target) domain.DerivedDistances {
	pos, ok := target.Get()
	if !ok {
		return domain.DerivedDistances{
			ApproachDistanceYards: geo.DistanceYards(geometry.Tee, geometry.Green),
			TargetLabel:           TargetPrompt,
			ApproachLabel:         ApproachLabelNoTarget,
		}
	}

	targetYards := geo.DistanceYards(geometry.Tee, pos)
	return domain.DerivedDistances{
		ApproachDistanceYards: geo.DistanceYards(pos, geometry.Green),
		TargetLabel:           PlaysLikeLabel(targetYards),
		ApproachLabel:         ApproachLabelTarget,
	}.WithTarget(targetYards)
}

// PlaysLike applies the fixed plays-like adjustment and rounds to whole yards.
func PlaysLike(targetYards float64) int {
	return int(math.Round(targetYards * PlaysLikeFactor))
}

func PlaysLikeLabel(targetYards float64) string {
	return fmt.Sprintf("Plays like %dy %s", PlaysLike(targetYards), SuggestedClub)
}
