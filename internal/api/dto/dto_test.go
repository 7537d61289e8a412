package dto

import (
	"testing"

	"hole-map-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatYards(t *testing.T) {
	assert.Equal(t, "0y", FormatYards(0))
	assert.Equal(t, "245y", FormatYards(244.6))
	assert.Equal(t, "244y", FormatYards(244.4))
}

func TestNewHoleDistancesResponse(t *testing.T) {
	hole := domain.HoleInfo{HoleNumber: 3}

	t.Run("without target", func(t *testing.T) {
		res := NewHoleDistancesResponse(hole, domain.DerivedDistances{
			ApproachDistanceYards: 410.2,
			TargetLabel:           "Long press to set a target",
			ApproachLabel:         "Tee to green",
		})

		assert.Equal(t, 3, res.HoleNumber)
		assert.Nil(t, res.TargetDistanceYards)
		assert.Nil(t, res.Display.Target)
		assert.Equal(t, "410y", res.Display.Approach)
	})

	t.Run("with target", func(t *testing.T) {
		res := NewHoleDistancesResponse(hole, domain.DerivedDistances{
			ApproachDistanceYards: 190.1,
		}.WithTarget(220.7))

		require.NotNil(t, res.TargetDistanceYards)
		assert.Equal(t, 220.7, *res.TargetDistanceYards)
		require.NotNil(t, res.Display.Target)
		assert.Equal(t, "221y", *res.Display.Target)
		assert.Equal(t, "190y", res.Display.Approach)
	})
}
