package transactions

import "encore.dev/metrics"

var (
	feedCacheHits        = metrics.NewCounter[uint64]("transactions_feed_cache_hits", metrics.CounterConfig{})
	feedCacheMisses      = metrics.NewCounter[uint64]("transactions_feed_cache_misses", metrics.CounterConfig{})
	feedCacheExpirations = metrics.NewCounter[uint64]("transactions_feed_cache_expirations", metrics.CounterConfig{})
)

// feedCacheMetrics reports feed cache lookups as Encore counters.
type feedCacheMetrics struct{}

func (feedCacheMetrics) Hit()    { feedCacheHits.Increment() }
func (feedCacheMetrics) Miss()   { feedCacheMisses.Increment() }
func (feedCacheMetrics) Expire() { feedCacheExpirations.Increment() }
