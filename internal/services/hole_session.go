package services

import "hole-map-service/internal/domain"

// HoleSession holds the mutable state of one hole-viewing session: the active
// hole and the player's target. It is owned by a single caller and is not
// safe for concurrent mutation.
type HoleSession struct {
	hole   domain.HoleInfo
	target domain.Target
}

func NewHoleSession(info domain.HoleInfo) *HoleSession {
	return &HoleSession{hole: info}
}

func (s *HoleSession) Hole() domain.HoleInfo { return s.hole }

func (s *HoleSession) Target() domain.Target { return s.target }

// Place or move the target (long press or marker drag).
func (s *HoleSession) SetTarget(c domain.Coordinates) {
	s.target = domain.TargetAt(c)
}

func (s *HoleSession) ClearTarget() {
	s.target = domain.NoTarget()
}

// LoadHole switches the session to another hole. The target does not carry
// over between holes.
func (s *HoleSession) LoadHole(info domain.HoleInfo) {
	s.hole = info
	s.target = domain.NoTarget()
}

// Distances re-derives the displayed distances from the current state.
func (s *HoleSession) Distances() domain.DerivedDistances {
	return DeriveHoleDistances(s.hole.Geometry(), s.target)
}
