package domain

// Target is the player's optional aim point between tee and green.
// The zero value is "no target".
type Target struct {
	pos Coordinates
	set bool
}

// NoTarget returns an absent target.
func NoTarget() Target { return Target{} }

// TargetAt returns a target placed at c.
func TargetAt(c Coordinates) Target { return Target{pos: c, set: true} }

// Get returns the target position and whether one is set.
func (t Target) Get() (Coordinates, bool) { return t.pos, t.set }

func (t Target) IsSet() bool { return t.set }
