package bootstrap

import (
	"context"
	"log/slog"

	"styledecor/internal/infra/cache"
	"styledecor/internal/infra/repository"
	"styledecor/internal/pkg/config"
	"styledecor/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewBookingStore,
	),
)

// NewBookingStore puts the Redis read-through cache in front of the
// Postgres repository when Redis is enabled.
func NewBookingStore(lc fx.Lifecycle, cfg config.Config, base *repository.BookingRepository, logger *slog.Logger) (shared.BookingRepository, shared.CacheInvalidator, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, booking reads go straight to postgres")
		return base, shared.NopInvalidator{}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	bc := cache.NewBookingCache(base, client, cfg.Redis.CacheTTL, cfg.Redis.Prefix, logger)
	logger.Info("booking cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return bc, bc, nil
}
