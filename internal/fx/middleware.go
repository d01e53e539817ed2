package fx

import (
	"context"

	"github.com/jupiter96/tradespeoplehub-sub000/config"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/contracts"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newAdminAuth,
		newRateLimiter,
	),
	fx.Invoke(
		contracts.RegisterValidators,
	),
)

func newAdminAuth(cfg *config.Config) *middleware.AdminAuth {
	return middleware.NewAdminAuth(cfg.Admin.APIKeyHash)
}

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}
