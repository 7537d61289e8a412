package services

import (
	"fmt"
	"math"
	"testing"

	"hole-map-service/internal/domain"
	"hole-map-service/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleGeometry = domain.HoleGeometry{
		Tee:   domain.Coordinates{Lat: 37.4219983, Lng: -122.084},
		Green: domain.Coordinates{Lat: 37.4235, Lng: -122.0798},
	}
	layup = domain.Coordinates{Lat: 37.4226, Lng: -122.0822}
)

func TestDeriveHoleDistancesNoTarget(t *testing.T) {
	d := DeriveHoleDistances(sampleGeometry, domain.NoTarget())

	_, ok := d.TargetDistance()
	assert.False(t, ok)
	assert.Equal(t, geo.DistanceYards(sampleGeometry.Tee, sampleGeometry.Green), d.ApproachDistanceYards)
	assert.Equal(t, TargetPrompt, d.TargetLabel)
	assert.Equal(t, ApproachLabelNoTarget, d.ApproachLabel)
}

func TestDeriveHoleDistancesWithTarget(t *testing.T) {
	d := DeriveHoleDistances(sampleGeometry, domain.TargetAt(layup))

	targetYards, ok := d.TargetDistance()
	require.True(t, ok)
	assert.Equal(t, geo.DistanceYards(sampleGeometry.Tee, layup), targetYards)
	assert.Equal(t, geo.DistanceYards(layup, sampleGeometry.Green), d.ApproachDistanceYards)
	assert.Greater(t, targetYards, 0.0)
	assert.Greater(t, d.ApproachDistanceYards, 0.0)
	assert.Equal(t, ApproachLabelTarget, d.ApproachLabel)

	want := fmt.Sprintf("Plays like %dy 2W", int(math.Round(targetYards*0.95)))
	assert.Equal(t, want, d.TargetLabel)
}

func TestDeriveHoleDistancesTargetOnTee(t *testing.T) {
	d := DeriveHoleDistances(sampleGeometry, domain.TargetAt(sampleGeometry.Tee))

	yards, ok := d.TargetDistance()
	assert.True(t, ok)
	assert.Equal(t, 0.0, yards)
	assert.Equal(t, "Plays like 0y 2W", d.TargetLabel)
	assert.Equal(t, geo.DistanceYards(sampleGeometry.Tee, sampleGeometry.Green), d.ApproachDistanceYards)
}

func TestPlaysLike(t *testing.T) {
	tests := []struct {
		yards float64
		want  int
	}{
		{yards: 0, want: 0},
		{yards: 100, want: 95},
		{yards: 300, want: 285},
		{yards: 210.4, want: 200},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlaysLike(tt.yards), "yards=%v", tt.yards)
	}
	assert.Equal(t, "Plays like 95y 2W", PlaysLikeLabel(100))
}
