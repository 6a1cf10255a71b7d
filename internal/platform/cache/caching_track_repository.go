// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trackapp/internal/feature/tracks/domain/entity"
	"trackapp/internal/feature/tracks/usecase"
)

// CachingTrackRepository decorates a TrackRepository with Redis caching.
// Listings are cached per owner and invalidated when that owner records a
// new track; a nil client bypasses the cache entirely.
type CachingTrackRepository struct {
	inner     usecase.TrackRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingTrackRepository decorates a TrackRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tracks".
func NewCachingTrackRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TrackRepository, namespace string) *CachingTrackRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tracks"
	}
	return &CachingTrackRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListByOwner retrieves an owner's tracks, checking the cache first and
// falling back to the database.
func (c *CachingTrackRepository) ListByOwner(ctx context.Context, userID uint) ([]entity.Track, error) {
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Track
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create persists a new track and invalidates the owner's cached listing.
func (c *CachingTrackRepository) Create(ctx context.Context, track *entity.Track) error {
	if err := c.inner.Create(ctx, track); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale listing expires with the TTL anyway
	_ = c.rdb.Del(ctx, c.cacheKey(track.UserID)).Err()
	return nil
}

// cacheKey generates the cache key for one owner's track listing.
func (c *CachingTrackRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, userID)
}
