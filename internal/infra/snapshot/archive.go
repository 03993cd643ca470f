// Package snapshot stores ledger snapshots in blob storage.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "file:///tmp/loyalty-snapshots?create_dir=true"

// ErrSnapshotNotFound is returned by Load when no snapshot exists under the name.
var ErrSnapshotNotFound = errors.New("snapshot not found")

type blobArchive struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the snapshot archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.SnapshotArchive, error) {
	bucketURL := defaultBucketURL
	if params.Config.Snapshot != nil && params.Config.Snapshot.BucketURL != "" {
		bucketURL = params.Config.Snapshot.BucketURL
	}

	archive, err := Open(params.Ctx, bucketURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return archive.Close()
		},
	})

	return archive, nil
}

// Open opens a snapshot archive on any gocloud.dev blob URL
// (file://, mem://, gs://, s3://).
func Open(ctx context.Context, bucketURL string, logger *slog.Logger) (service.SnapshotArchive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot bucket %s", bucketURL)
	}

	logger.Info("Snapshot archive opened", slog.String("bucket_url", bucketURL))

	return &blobArchive{
		bucket: bucket,
		logger: logger,
	}, nil
}

func (a *blobArchive) Save(ctx context.Context, name string, snapshot *entity.LedgerSnapshot) error {
	key, err := objectKey(name)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	if err := a.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrapf(err, "write snapshot %s", key)
	}

	a.logger.InfoContext(ctx, "Snapshot saved",
		slog.String("key", key),
		slog.Int("balance", snapshot.Balance),
		slog.Int("entries", len(snapshot.History)),
	)

	return nil
}

func (a *blobArchive) Load(ctx context.Context, name string) (*entity.LedgerSnapshot, error) {
	key, err := objectKey(name)
	if err != nil {
		return nil, err
	}

	payload, err := a.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(ErrSnapshotNotFound, key)
		}

		return nil, errors.Wrapf(err, "read snapshot %s", key)
	}

	var snapshot entity.LedgerSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", key)
	}

	return &snapshot, nil
}

func (a *blobArchive) Close() error {
	return errors.WithStack(a.bucket.Close())
}

// objectKey names the blob for a snapshot; ".json" is appended when missing.
func objectKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("snapshot name is required")
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	return name, nil
}
