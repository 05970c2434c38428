package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kbdigital/ytselleradda/internal/middleware"
)

// Redis key TTLs.
const (
	FilterCacheTTL  = 15 * time.Minute
	SessionCacheTTL = 24 * time.Hour
)

// CacheService provides a Redis cache-aside layer for filter results and browsing sessions.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or connection
// fails, it returns a CacheService with a nil client (cache operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		_ = rdb.Close()
		return &CacheService{}
	}

	middleware.Logger.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// NewCacheServiceWithClient wraps an existing client. rdb may be nil.
func NewCacheServiceWithClient(rdb *redis.Client) *CacheService {
	return &CacheService{rdb: rdb}
}

// Enabled reports whether a Redis client is configured.
func (c *CacheService) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// GetFilterResult returns the cached listing IDs for a filter key, or nil if not cached.
func (c *CacheService) GetFilterResult(ctx context.Context, key string) ([]string, error) {
	if !c.Enabled() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, filterKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ids := []string{}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetFilterResult stores the listing IDs matched for a filter key.
func (c *CacheService) SetFilterResult(ctx context.Context, key string, ids []string) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, filterKey(key), b, FilterCacheTTL).Err()
}

// GetSession retrieves a stored session record. Returns nil if absent.
func (c *CacheService) GetSession(ctx context.Context, id string) ([]byte, error) {
	if !c.Enabled() {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetSession stores a session record and refreshes its TTL.
func (c *CacheService) SetSession(ctx context.Context, id string, data any) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, sessionKey(id), b, SessionCacheTTL).Err()
}

// InvalidateSession removes a session.
func (c *CacheService) InvalidateSession(ctx context.Context, id string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Del(ctx, sessionKey(id)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

func filterKey(key string) string {
	return fmt.Sprintf("listings:filter:%s", key)
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
