package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Loyalty.HistoryLimit = -3

	applyDefaults(cfg)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "file:///var/tmp/loyalty?create_dir=true", cfg.Storage.BucketURL)
	assert.Equal(t, "loyalty:", cfg.Storage.KeyPrefix)
	assert.InDelta(t, 10.0, cfg.Loyalty.PointsRate, 0)
	assert.InDelta(t, 5.0, cfg.Loyalty.CentsPerPoint, 0)
	assert.Equal(t, 0, cfg.Loyalty.HistoryLimit)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestLoyaltyConfig_Location(t *testing.T) {
	loc, err := LoyaltyConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoyaltyConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoyaltyConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("storage:\n  driver: redis\n  bucketUrl: file:///srv/a\n  keyPrefix: shop:\nloyalty:\n  pointsRate: 10\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("LOYALTY_POINTSRATE", "25")
	t.Setenv("STORAGE_BUCKETURL", "file:///srv/b")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "shop:", cfg.Storage.KeyPrefix)
	assert.InDelta(t, 25.0, cfg.Loyalty.PointsRate, 0)
	assert.Equal(t, "file:///srv/b", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
