package domain

// Immutable geographic coordinates in degrees (latitude, longitude).
// Values are taken as given: no range checks, no clamping.
type Coordinates struct {
	Lat float64
	Lng float64
}
