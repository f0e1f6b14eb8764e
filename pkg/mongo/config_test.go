package mongo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/odmkit/pkg/config"
	"github.com/odmkit/odmkit/pkg/di"
	"github.com/odmkit/odmkit/pkg/mongo"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("MONGODB_RETRY_ATTEMPTS", "5")

	var cfg mongo.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "mongodb://localhost:27017", cfg.URL)
	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, uint64(100), cfg.MaxPoolSize)
	assert.True(t, cfg.RetryWrites)
}

func TestRegisterService(t *testing.T) {
	c := di.NewContainer()
	mongo.RegisterService(c, "analytics", nil)

	assert.True(t, c.Has("analytics"))
}
