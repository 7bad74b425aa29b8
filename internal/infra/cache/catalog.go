package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:"

func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	slog.Info("connected to redis", "addr", cfg.RedisAddr)
	return client, nil
}

// HotelCache is a read-through cache in front of a hotel read store.
// Hotels never change after seeding, so entries only expire by TTL.
// Redis failures are logged and the inner store is queried instead.
type HotelCache struct {
	inner  queries.HotelReadStore
	client redis.Cmdable
	ttl    time.Duration
}

func NewHotelCache(inner queries.HotelReadStore, client redis.Cmdable, ttl time.Duration) *HotelCache {
	return &HotelCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *HotelCache) List(ctx context.Context, db sqlc.DBTX, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	key := hotelListKey(filter)

	var cached []*queries.HotelView
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := c.inner.List(ctx, db, filter)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, result)
	return result, nil
}

// FindByID never caches a miss.
func (c *HotelCache) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.HotelView, error) {
	key := hotelKey(id)

	var cached queries.HotelView
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := c.inner.FindByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, result)
	return result, nil
}

func (c *HotelCache) get(ctx context.Context, key string, target any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		slog.Warn("catalog cache entry is corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *HotelCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("catalog cache encode failed", "key", key, "error", err.Error())
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

func hotelKey(id uuid.UUID) string {
	return keyPrefix + "hotel:" + id.String()
}

// hotelListKey is stable for equal filters. City is lowercased since the
// store matches it case-insensitively.
func hotelListKey(filter queries.HotelFilter) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString("hotels")

	b.WriteString(":city=")
	if filter.City != nil {
		b.WriteString(strings.ToLower(*filter.City))
	}
	b.WriteString(":min_rating=")
	if filter.MinRating != nil {
		b.WriteString(strconv.FormatFloat(*filter.MinRating, 'f', -1, 64))
	}
	b.WriteString(":max_price=")
	if filter.MaxPriceCents != nil {
		b.WriteString(strconv.FormatInt(*filter.MaxPriceCents, 10))
	}
	return b.String()
}
