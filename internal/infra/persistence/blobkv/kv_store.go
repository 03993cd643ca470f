// Package blobkv persists loyalty keys as objects in a gocloud.dev blob bucket.
// With a file:// bucket each key is one file, which makes it the durable
// default for a single-node install.
package blobkv

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const contentType = "text/plain; charset=utf-8"

// Store is a KeyValueStore over a blob bucket. Close releases the bucket.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

var _ repository.KeyValueStore = (*Store)(nil)

// Open opens the bucket at bucketURL (file://, mem://, gs://, s3://).
func Open(ctx context.Context, bucketURL string, logger *slog.Logger) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open storage bucket %s", bucketURL)
	}

	logger.Info("Blob key/value store opened", slog.String("bucket_url", bucketURL))

	return &Store{
		bucket: bucket,
		logger: logger.With(slog.String("component", "blob_kv")),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "blob get %s", key)
	}

	return string(data), nil
}

// Set replaces the object under key. fileblob writes through a temp file and
// renames it, so a reader never sees a half-written value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), &blob.WriterOptions{
		ContentType: contentType,
	}); err != nil {
		return errors.Wrapf(err, "blob set %s", key)
	}

	s.logger.DebugContext(ctx, "Key stored", slog.String("key", key), slog.Int("bytes", len(value)))

	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "blob remove %s", key)
	}

	return nil
}

// Close closes the underlying bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}
