package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keySearch = "places:search:"

// PlaceCache caches place search results in Redis. The planner never writes
// places, so entries expire by TTL; InvalidateAll drops them all after a reseed.
type PlaceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPlaceCache returns a new PlaceCache.
func NewPlaceCache(rdb *redis.Client, ttl time.Duration) *PlaceCache {
	return &PlaceCache{rdb: rdb, ttl: ttl}
}

// GetSearch returns cached search result for query q, or nil if miss.
func (c *PlaceCache) GetSearch(ctx context.Context, q string) ([]dom.Place, error) {
	b, err := c.rdb.Get(ctx, SearchKey(q)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Place
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetSearch stores the search result in cache.
func (c *PlaceCache) SetSearch(ctx context.Context, q string, list []dom.Place) error {
	if list == nil {
		list = []dom.Place{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, SearchKey(q), b, c.ttl).Err()
}

// InvalidateAll removes all search keys.
func (c *PlaceCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keySearch+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// SearchKey is the cache key for query q; matching is case-insensitive so the key is too.
func SearchKey(q string) string {
	return keySearch + strings.TrimSpace(strings.ToLower(q))
}
