package domain

// Distances derived from a hole's geometry and the current target.
// It is recomputed on every change and never stored.
type DerivedDistances struct {
	// Tee to target. Read through TargetDistance so "no target" cannot be
	// mistaken for a zero distance.
	targetYards float64
	hasTarget   bool

	// Target to green, or tee to green when no target is set.
	ApproachDistanceYards float64

	TargetLabel   string
	ApproachLabel string
}

// WithTarget returns a copy of d carrying a tee-to-target distance.
func (d DerivedDistances) WithTarget(yards float64) DerivedDistances {
	d.targetYards = yards
	d.hasTarget = true
	return d
}

// TargetDistance returns the tee-to-target distance and whether a target is set.
func (d DerivedDistances) TargetDistance() (float64, bool) {
	return d.targetYards, d.hasTarget
}

func (d DerivedDistances) HasTarget() bool { return d.hasTarget }
