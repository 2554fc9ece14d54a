package question

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	directoryKey        = "categories:all"
	defaultDirectoryTTL = 5 * time.Minute
)

// CachedDirectory fronts a CategoryDirectory with a Redis cache. The
// category table is fixed at provisioning time and read on every listing,
// so it caches extremely well. Cache misses and Redis failures both fall
// through to the inner directory.
type CachedDirectory struct {
	inner  CategoryDirectory
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryDirectory = (*CachedDirectory)(nil)

// NewCachedDirectory wraps inner with a Redis cache. A non-positive ttl
// selects the default.
func NewCachedDirectory(inner CategoryDirectory, client *redis.Client, ttl time.Duration) *CachedDirectory {
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}
	return &CachedDirectory{inner: inner, client: client, ttl: ttl}
}

// All returns the category table, serving from Redis when possible.
func (d *CachedDirectory) All(ctx context.Context) ([]Category, error) {
	if data, err := d.client.Get(ctx, directoryKey).Bytes(); err == nil {
		var categories []Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := d.inner.All(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(categories); err == nil {
		_ = d.client.Set(ctx, directoryKey, payload, d.ttl).Err()
	}
	return categories, nil
}

// Get resolves one category by its store-native id, or (nil, nil) if the id
// is unknown. It reads through All so lookups share the cached table.
func (d *CachedDirectory) Get(ctx context.Context, id int) (*Category, error) {
	categories, err := d.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, nil
}
