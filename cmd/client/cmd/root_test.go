package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vedamatch/internal/app/client/config"
)

func TestEffectiveEnv(t *testing.T) {
	assert.Equal(t, config.EnvProd, effectiveEnv(config.EnvProd, false))
	assert.Equal(t, config.EnvDev, effectiveEnv(config.EnvDev, false))

	// --debug переключает любое окружение на local
	assert.Equal(t, config.EnvLocal, effectiveEnv(config.EnvProd, true))
	assert.Equal(t, config.EnvLocal, effectiveEnv(config.EnvLocal, true))
}
