// Package postgres contains the PostgreSQL implementation of the key/value store using GORM.
package postgres

import (
	"context"

	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements the repository.KeyValueStore interface.
type kvStore struct {
	db *gorm.DB
}

// NewKeyValueStore is the constructor for kvStore.
func NewKeyValueStore(db *gorm.DB) repository.KeyValueStore {
	return &kvStore{
		db: db,
	}
}

// Migrate creates the key/value table when it does not exist.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.KeyValueModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate loyalty_kv")
	}

	return nil
}

// Get retrieves the value stored under key.
func (repo *kvStore) Get(ctx context.Context, key string) (string, error) {
	var row model.KeyValueModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to get key %s", key)
	}

	return row.Value, nil
}

// Set upserts value under key.
func (repo *kvStore) Set(ctx context.Context, key, value string) error {
	row := &model.KeyValueModel{
		Key:   key,
		Value: value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrapf(err, "failed to set key %s", key)
	}

	return nil
}

// Remove deletes key; a missing key is not an error.
func (repo *kvStore) Remove(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KeyValueModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to remove key %s", key)
	}

	return nil
}
