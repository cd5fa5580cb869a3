package app

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/admybrand/insights/internal/marketing"
)

// Marketing bundles the dataset-backed service with its cache.
type Marketing struct {
	Service *marketing.Service
	Cache   *marketing.Cache
}

// NewMarketing generates the process dataset and wraps it in a Service. A nil
// client disables caching.
func NewMarketing(cfg *Config, client *redis.Client, now func() time.Time) Marketing {
	opts := marketing.GeneratorOptions{Now: now}
	ttl := 10 * time.Minute
	trendDays := marketing.DefaultTrendDays
	if cfg != nil {
		opts.Seed = cfg.Seed
		opts.Days = cfg.WindowDays
		ttl = cfg.CacheTTL
		trendDays = cfg.TrendDays
	}
	gen := marketing.NewGenerator(opts)
	var cache *marketing.Cache
	if client != nil {
		cache = marketing.NewCache(client, ttl)
	}
	service := marketing.NewService(gen.Generate(), cache, gen.Rand()).WithTrendDays(trendDays)
	return Marketing{Service: service, Cache: cache}
}
