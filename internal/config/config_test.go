package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("SEED_VERSION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, "nordnotes_", cfg.Store.KeyPrefix)
	require.Equal(t, DefaultSeedVersion, cfg.Market.SeedVersion)
	require.InDelta(t, 0.10, cfg.Market.FeeRate, 1e-9)
	require.True(t, cfg.Market.GuardSelfPurchase)
	require.True(t, cfg.Market.GuardDuplicateReview)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("MARKET_GUARD_SELF_PURCHASE", "false")
	t.Setenv("PLATFORM_FEE_RATE", "0.2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Store.Backend)
	require.Equal(t, "localhost:6380", cfg.Redis.Addr())
	require.False(t, cfg.Market.GuardSelfPurchase)
	require.InDelta(t, 0.2, cfg.Market.FeeRate, 1e-9)
}

func TestLoadConfigRejectsInvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("STORE_BACKEND", "sqlite")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigMinIO(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.False(t, cfg.MinIO.Enabled())
	require.Equal(t, "nordnotes-documents", cfg.MinIO.Bucket)
	require.Equal(t, time.Hour, cfg.MinIO.PreviewTTL)

	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_PREVIEW_TTL_MINUTES", "5")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.MinIO.Enabled())
	require.True(t, cfg.MinIO.UseSSL)
	require.Equal(t, 5*time.Minute, cfg.MinIO.PreviewTTL)
}
