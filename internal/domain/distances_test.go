package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedDistancesTargetDistance(t *testing.T) {
	var none DerivedDistances
	_, ok := none.TargetDistance()
	assert.False(t, ok)
	assert.False(t, none.HasTarget())

	zero := DerivedDistances{}.WithTarget(0)
	yards, ok := zero.TargetDistance()
	assert.True(t, ok)
	assert.Equal(t, 0.0, yards)

	withTarget := none.WithTarget(212.5)
	yards, ok = withTarget.TargetDistance()
	assert.True(t, ok)
	assert.Equal(t, 212.5, yards)
	assert.False(t, none.HasTarget(), "WithTarget must not modify the receiver")
}
