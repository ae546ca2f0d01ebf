package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	classCatalogVersionKey = "catalog:classes:version"
	classCatalogKeyPrefix  = "catalog:classes:v"
)

// ClassCatalogCache keeps the class list in redis under a versioned key.
// Invalidate bumps the version and superseded entries expire with their TTL.
// A nil client disables it: reads miss and writes are dropped.
type ClassCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClassCatalogCache(client *redis.Client, ttl time.Duration) *ClassCatalogCache {
	return &ClassCatalogCache{
		client: client,
		ttl:    ttl,
	}
}

func catalogKey(version int64) string {
	return classCatalogKeyPrefix + strconv.FormatInt(version, 10)
}

// Version returns the current catalog version. A missing counter is version 0.
func (c *ClassCatalogCache) Version(ctx context.Context) (int64, error) {
	if c.client == nil {
		return 0, nil
	}

	v, err := c.client.Get(ctx, classCatalogVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read class catalog version")
	}
	return v, nil
}

func (c *ClassCatalogCache) GetAll(ctx context.Context, version int64) ([]queries.ClassView, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, catalogKey(version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read class catalog cache")
	}

	var classes []queries.ClassView
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode class catalog cache")
	}
	return classes, true, nil
}

func (c *ClassCatalogCache) SetAll(ctx context.Context, version int64, classes []queries.ClassView) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(classes)
	if err != nil {
		return errs.Wrap(err, "failed to encode class catalog")
	}
	if err := c.client.Set(ctx, catalogKey(version), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write class catalog cache")
	}
	return nil
}

// Invalidate moves readers to a fresh version so the next read sees current
// seat counts. Lists fetched under an older version are written to a key
// nobody reads anymore.
func (c *ClassCatalogCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Incr(ctx, classCatalogVersionKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate class catalog cache")
	}
	return nil
}
