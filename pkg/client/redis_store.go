package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace = "rd"
	entryPrefix  = "cache"
	registryName = "cache_keys"
)

type cmdable interface {
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
	SAdd(context.Context, string, ...any) *redis.IntCmd
	SRem(context.Context, string, ...any) *redis.IntCmd
	SMembers(context.Context, string) *redis.StringSliceCmd
}

// RedisStore shares completed responses between dashboard processes.
// Entries carry no TTL; a registry set tracks every key for Clear.
type RedisStore struct {
	store cmdable
	raw   *redis.Client
}

var _ ResponseStore = (*RedisStore)(nil)

// OpenRedisStore parses url, connects and verifies connectivity.
func OpenRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{store: raw, raw: raw}, nil
}

func (s *RedisStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := s.store.Get(ctx, entryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, body []byte) error {
	if err := s.store.Set(ctx, entryKey(key), body, 0).Err(); err != nil {
		return err
	}
	return s.store.SAdd(ctx, registryKey(), key).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.store.Del(ctx, entryKey(key)).Err(); err != nil {
		return err
	}
	return s.store.SRem(ctx, registryKey(), key).Err()
}

func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.store.SMembers(ctx, registryKey()).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}
	toDelete := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		toDelete = append(toDelete, entryKey(key))
	}
	toDelete = append(toDelete, registryKey())
	return s.store.Del(ctx, toDelete...).Err()
}

func entryKey(key string) string {
	return strings.Join([]string{keyNamespace, entryPrefix, key}, ":")
}

func registryKey() string {
	return keyNamespace + ":" + registryName
}
