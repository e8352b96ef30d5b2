package fx

import (
	"context"
	"time"

	"Planzee/config"
	"Planzee/internal/metrics"
	"Planzee/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		metrics.NewMetrics,
		newRateLimiter,
	),
)

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, time.Minute)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}
