package ratelimit

import (
	"context"

	"github.com/smallbiznis/invoicegen/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("rate.limit",
	fx.Provide(provideSendLimiter),
)

func provideSendLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Limiter, error) {
	limiter, err := NewSendLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	if !limiter.Enabled() {
		return limiter, nil
	}

	log.Info("send rate limit enabled",
		zap.String("redis_addr", cfg.RateLimit.RedisAddr),
		zap.Float64("rate_per_second", cfg.RateLimit.SendRate),
		zap.Int("burst", cfg.RateLimit.SendBurst),
	)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return limiter.Close()
		},
	})
	return limiter, nil
}
