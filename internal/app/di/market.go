// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"lpclass_backend/internal/platform/breaker"
	"lpclass_backend/internal/platform/externalapi/dexscreener"
	infrahttp "lpclass_backend/internal/platform/http"
	"lpclass_backend/internal/platform/metrics"
	"lpclass_backend/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured DexscreenerMarket with HTTP client, rate limiter and circuit breaker.
func NewMarket(cfg dexscreener.Config, m *metrics.Registry) *dexscreener.DexscreenerMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, dexscreener.UserAgent)
	opts := []dexscreener.Option{
		dexscreener.WithRateLimiter(ratelimiter.NewRateLimiter("dexscreener", cfg.RequestsPerMinute, time.Minute)),
		dexscreener.WithBreaker(breaker.New("dexscreener", breaker.DefaultSettings())),
	}
	if m != nil {
		opts = append(opts, dexscreener.WithRecorder(m))
	}
	return dexscreener.NewDexscreenerMarket(cfg, httpClient, opts...)
}
