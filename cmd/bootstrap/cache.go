package bootstrap

import (
	"context"
	"log/slog"

	"github.com/arjitrawat15/Stavia/internal/infra/cache"
	"github.com/arjitrawat15/Stavia/internal/infra/readstore"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewHotelReadStore,
	),
)

// NewHotelReadStore puts the redis cache in front of the hotel read store
// when REDIS_ADDR is set. An unreachable redis at startup disables the cache
// instead of failing the boot.
func NewHotelReadStore(lc fx.Lifecycle, cfg config.Config, q *sqlc.Queries, logger *slog.Logger) queries.HotelReadStore {
	store := readstore.NewHotelReadStore(q)
	if !cfg.Cache.Enabled() {
		return store
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Cache)
	if err != nil {
		logger.Warn("catalog cache disabled", "addr", cfg.Cache.RedisAddr, "error", err)
		return store
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("catalog cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.CatalogTTL)
	return cache.NewHotelCache(store, client, cfg.Cache.CatalogTTL)
}
