package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "pathfinder"

	solutionKeyFmt = "%s:solution:%s"
	lockKeyFmt     = "%s:solve_lock:%s"
)

var _ i.SolutionCache = &RedisSolutionCache{}

// Options configures a RedisSolutionCache.
type Options struct {
	// Key prefix, defaultPrefix when empty.
	Prefix string

	// How long a solve lock is held before redis releases it on its own.
	LockTTL time.Duration
}

// RedisSolutionCache keeps encoded solutions in Redis and serializes
// searches of the same maze across service instances with a redsync mutex.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	opts   Options
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client.
func NewRedisSolutionCache(client *redis.Client, opts Options) *RedisSolutionCache {
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	pool := goredis.NewPool(client)
	return &RedisSolutionCache{
		client: client,
		locker: redsync.New(pool),
		opts:   opts,
	}
}

// Get implements i.SolutionCache.
func (c *RedisSolutionCache) Get(ctx context.Context, mazeID uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.solutionKey(mazeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached solution: %w", err)
	}
	return data, true, nil
}

// Put implements i.SolutionCache.
func (c *RedisSolutionCache) Put(ctx context.Context, mazeID uuid.UUID, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.solutionKey(mazeID), data, ttl).Err(); err != nil {
		return fmt.Errorf("caching solution: %w", err)
	}
	return nil
}

// Lock implements i.SolutionCache.
func (c *RedisSolutionCache) Lock(ctx context.Context, mazeID uuid.UUID) (func(context.Context) error, error) {
	var opts []redsync.Option
	if c.opts.LockTTL > 0 {
		opts = append(opts, redsync.WithExpiry(c.opts.LockTTL))
	}
	mutex := c.locker.NewMutex(c.lockKey(mazeID), opts...)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking maze %s: %w", mazeID, err)
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

func (c *RedisSolutionCache) solutionKey(mazeID uuid.UUID) string {
	return fmt.Sprintf(solutionKeyFmt, c.opts.Prefix, mazeID)
}

func (c *RedisSolutionCache) lockKey(mazeID uuid.UUID) string {
	return fmt.Sprintf(lockKeyFmt, c.opts.Prefix, mazeID)
}
