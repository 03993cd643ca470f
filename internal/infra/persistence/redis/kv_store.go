package redis

import (
	"context"

	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type kvStore struct {
	client goredis.Cmdable
}

// NewKeyValueStore creates a key/value store on top of a Redis client.
// Values are stored without expiry.
func NewKeyValueStore(client goredis.Cmdable) repository.KeyValueStore {
	return &kvStore{client: client}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}
