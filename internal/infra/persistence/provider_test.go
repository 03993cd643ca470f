package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) Params {
	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewKeyValueStore_Memory(t *testing.T) {
	for _, driver := range []string{"memory", " Memory "} {
		t.Run("driver="+driver, func(t *testing.T) {
			store, err := NewKeyValueStore(newParams(t, &config.Config{
				Storage: config.StorageConfig{Driver: driver},
			}))
			require.NoError(t, err)

			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "k", "v"))

			value, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v", value)

			_, err = store.Get(ctx, "missing")
			assert.ErrorIs(t, err, repository.ErrKeyNotFound)
		})
	}
}

func TestNewKeyValueStore_FileKeepsCommittedBalance(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{BucketURL: "file://" + t.TempDir(), KeyPrefix: "loyalty:"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewFixed(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	// The empty driver selects the file store.
	for _, driver := range []string{"", "file"} {
		cfg.Storage.Driver = driver

		first, err := NewKeyValueStore(newParams(t, cfg))
		require.NoError(t, err)
		writer := ledger.New(ledger.Params{Store: first, Config: cfg, Logger: logger, Clock: clk})

		before := writer.GetBalance(ctx)
		total, entry, err := writer.Credit(ctx, 25, entity.EntryMetadata{Description: "Purchase: Mocha"})
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, before+25, total)

		second, err := NewKeyValueStore(newParams(t, cfg))
		require.NoError(t, err)
		reader := ledger.New(ledger.Params{Store: second, Config: cfg, Logger: logger, Clock: clk})

		assert.Equal(t, total, reader.GetBalance(ctx))
		history := reader.GetHistory(ctx)
		require.NotEmpty(t, history)
		assert.Equal(t, entry.ID, history[0].ID)
	}
}

func TestNewKeyValueStore_Redis(t *testing.T) {
	store, err := NewKeyValueStore(newParams(t, &config.Config{
		Storage: config.StorageConfig{Driver: "redis"},
		Redis:   &config.RedisConfig{Addr: "localhost:6379"},
	}))
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestNewKeyValueStore_MissingBackendConfig(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{"redis without redis section", "redis"},
		{"postgres without postgres section", "postgres"},
		{"file without bucket url", "file"},
		{"unknown driver", "bolt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyValueStore(newParams(t, &config.Config{
				Storage: config.StorageConfig{Driver: tt.driver},
			}))
			assert.Error(t, err)
		})
	}
}
