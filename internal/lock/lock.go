// Package lock provides the run lock that keeps engine invocations from overlapping.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrNotAcquired is returned when the lock is held by another owner.
var ErrNotAcquired = errors.New("lock is held by another owner")

// Release gives the lock back. It is safe to call after the lease expired.
type Release func(ctx context.Context) error

// releaseScript deletes the key only if it still holds our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLock is a lease-based mutex stored under a single Redis key.
type RedisLock struct {
	client redisClient
	key    string
	ttl    time.Duration
}

// NewRedisLock creates a lock on key that expires after ttl unless released.
func NewRedisLock(client redisClient, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{client: client, key: key, ttl: ttl}
}

// Acquire takes the lock or returns ErrNotAcquired.
func (l *RedisLock) Acquire(ctx context.Context) (Release, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", l.key, err)
	}

	if !ok {
		return nil, ErrNotAcquired
	}

	return func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", l.key, err)
		}

		return nil
	}, nil
}

// Noop always succeeds. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Acquire(context.Context) (Release, error) {
	return func(context.Context) error { return nil }, nil
}
