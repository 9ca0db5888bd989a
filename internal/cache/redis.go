package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg RedisConfig, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: 5,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Retry configuration
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}

const treeKey = "theology:tree"

func chapterKey(chapterNumber int) string {
	return fmt.Sprintf("theology:chapter:%d", chapterNumber)
}

// GetTree returns the cached serialized tree, or nil on a miss. Cache errors
// are returned so callers can log them; a miss is not an error.
func (r *RedisClient) GetTree() ([]byte, error) {
	return r.get(treeKey)
}

func (r *RedisClient) SetTree(payload []byte) error {
	return r.set(treeKey, payload)
}

func (r *RedisClient) GetChapter(chapterNumber int) ([]byte, error) {
	return r.get(chapterKey(chapterNumber))
}

func (r *RedisClient) SetChapter(chapterNumber int, payload []byte) error {
	return r.set(chapterKey(chapterNumber), payload)
}

// InvalidateTheology drops every cached theology payload. Called after an
// import batch commits, before readers see the new snapshot.
func (r *RedisClient) InvalidateTheology() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	keys, err := r.client.Keys(ctx, "theology:*").Result()
	if err != nil {
		return fmt.Errorf("failed to list theology keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate theology cache: %w", err)
	}
	return nil
}

func (r *RedisClient) get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

func (r *RedisClient) set(key string, payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in Redis: %w", key, err)
	}
	return nil
}
