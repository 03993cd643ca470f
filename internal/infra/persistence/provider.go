// Package persistence selects the key/value backend that holds the loyalty ledger.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"
	"loyalty/internal/infra/persistence/blobkv"
	"loyalty/internal/infra/persistence/ledger"
	"loyalty/internal/infra/persistence/memory"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params holds dependencies for the key/value store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore builds the backend named by storage.driver.
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	driver := strings.ToLower(strings.TrimSpace(params.Config.Storage.Driver))
	logger := params.Logger

	switch driver {
	case "", constants.StorageDriverFile:
		return newBlobStore(params)

	case constants.StorageDriverMemory:
		logger.Warn("Using in-memory key/value store, the ledger is lost on exit")

		return memory.NewKeyValueStore(), nil

	case constants.StorageDriverRedis:
		client, err := redis.NewClient(params.Lc, params.Config.Redis, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis key/value store")

		return redis.NewKeyValueStore(client), nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using postgres key/value store")

		return postgres.NewKeyValueStore(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

func newBlobStore(params Params) (repository.KeyValueStore, error) {
	bucketURL := params.Config.Storage.BucketURL
	if strings.TrimSpace(bucketURL) == "" {
		return nil, errors.New("storage.bucketUrl is required for the file driver")
	}

	store, err := blobkv.Open(params.Ctx, bucketURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Module provides the key/value store and the ledger built on it
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKeyValueStore,
		ledger.New,
	),
)
