package skyrail

import (
	"testing"

	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/partycle"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.Bullet.Speed = 0
	config.LevelLength = -1
	config.Explosion.ParticlesPerSecond = 0

	err := config.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, partycle.ErrInvalidConfig)
	require.ErrorContains(t, err, "Bullet.Speed")
	require.ErrorContains(t, err, "LevelLength")
}

func TestConfig_PoolSizeTooSmall(t *testing.T) {
	config := DefaultConfig()
	config.Fire.PoolSize = 2

	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)

	config.Fire.PoolSize = 8
	require.NoError(t, config.Validate())
	require.Equal(t, 8, config.PoolSize())
}

func TestConfig_PointLightBudget(t *testing.T) {
	config := DefaultConfig()
	config.Targets.Count = 10
	require.Equal(t, 10+5+1, config.PointLightCount())

	// fills the light table exactly
	config.Targets.Count = gfx.MaxPointLights - 6
	require.NoError(t, config.Validate())

	config.Targets.Count = 60
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)
	require.ErrorContains(t, config.Validate(), "point lights")

	// bullets without a laser do not need a light
	config.Bullet.LaserRadius = 0
	require.Equal(t, 61, config.PointLightCount())
	require.NoError(t, config.Validate())
}
