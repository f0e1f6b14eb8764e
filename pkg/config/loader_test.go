package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/odmkit/pkg/config"
)

type serverConfig struct {
	Host string `env:"TEST_SERVER_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_SERVER_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and environment values", func(t *testing.T) {
		t.Setenv("TEST_SERVER_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil destination fails", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	})

	t.Run("same type is cached across loads", func(t *testing.T) {
		t.Setenv("TEST_CACHED_VALUE", "loaded")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "loaded", first.Value)

		// The environment changing after the first load has no effect.
		t.Setenv("TEST_CACHED_VALUE", "changed")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "loaded", second.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
