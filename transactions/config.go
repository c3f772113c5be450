package transactions

import (
	"time"

	"encore.dev/config"

	"txview.app/transactions/retry"
)

type Config struct {
	// BaseURL is the host serving the /frontend-test feed.
	BaseURL config.String

	CacheTTLSeconds    config.Int
	CacheCapacity      config.Int
	HTTPTimeoutSeconds config.Int

	MaxRetries         config.Int
	InitialDelayMillis config.Int
	MaxDelayMillis     config.Int

	TemporalHost      config.String
	TemporalNamespace config.String
	TaskQueue         config.String

	// WarmOnStart loads the feed in the background when the service starts.
	WarmOnStart config.Bool
}

var cfg = config.Load[*Config]()

func cacheTTL() time.Duration {
	return time.Duration(cfg.CacheTTLSeconds()) * time.Second
}

func httpTimeout() time.Duration {
	return time.Duration(cfg.HTTPTimeoutSeconds()) * time.Second
}

func retryOptions() []retry.Option {
	return []retry.Option{
		retry.WithMaxRetries(cfg.MaxRetries()),
		retry.WithInitialDelay(time.Duration(cfg.InitialDelayMillis()) * time.Millisecond),
		retry.WithMaxDelay(time.Duration(cfg.MaxDelayMillis()) * time.Millisecond),
	}
}
