package service

import (
	"context"

	"loyalty/internal/domain/entity"
)

// SnapshotArchive stores ledger snapshots outside the primary key/value store.
type SnapshotArchive interface {
	// Save writes snapshot under name.
	Save(ctx context.Context, name string, snapshot *entity.LedgerSnapshot) error

	// Load reads the snapshot stored under name.
	Load(ctx context.Context, name string) (*entity.LedgerSnapshot, error)

	// Close releases the underlying bucket.
	Close() error
}
