package cache

import (
	"context"
	"time"

	"encore.dev/rlog"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a stored value stays valid.
const DefaultTTL = 5 * time.Minute

// Fetch produces the value for a key on a miss.
type Fetch[V any] func(ctx context.Context) (V, error)

// Metrics receives cache events. Implementations must be safe for concurrent use.
type Metrics interface {
	Hit()
	Miss()
	Expire()
}

// NoopMetrics ignores every event.
type NoopMetrics struct{}

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a string-keyed store whose entries are valid for a fixed TTL
// from the moment they were stored. Expired entries are evicted on access.
type Cache[V any] struct {
	ttl     time.Duration
	now     func() time.Time
	metrics Metrics
	logger  rlog.Ctx
	store   *ttlcache.Cache[string, entry[V]]
	group   singleflight.Group
}

type config struct {
	ttl      time.Duration
	now      func() time.Time
	metrics  Metrics
	name     string
	capacity uint64
}

type Option func(*config)

func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithCapacity bounds the number of entries; the least recently used entry
// is dropped when the bound is reached. Zero means unbounded.
func WithCapacity(n uint64) Option {
	return func(c *config) { c.capacity = n }
}

func New[V any](opts ...Option) *Cache[V] {
	cfg := config{
		ttl:     DefaultTTL,
		now:     time.Now,
		metrics: NoopMetrics{},
		name:    "cache",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	storeOpts := []ttlcache.Option[string, entry[V]]{
		ttlcache.WithTTL[string, entry[V]](ttlcache.NoTTL),
		ttlcache.WithDisableTouchOnHit[string, entry[V]](),
	}
	if cfg.capacity > 0 {
		storeOpts = append(storeOpts, ttlcache.WithCapacity[string, entry[V]](cfg.capacity))
	}

	return &Cache[V]{
		ttl:     cfg.ttl,
		now:     cfg.now,
		metrics: cfg.metrics,
		logger:  rlog.With("component", cfg.name),
		store:   ttlcache.New[string, entry[V]](storeOpts...),
	}
}

func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[V]) valid(e entry[V]) bool {
	return c.now().Sub(e.storedAt) < c.ttl
}

// lookup returns the valid entry for key, evicting it first if it has expired.
func (c *Cache[V]) lookup(key string) (V, bool) {
	var zero V

	item := c.store.Get(key)
	if item == nil {
		return zero, false
	}

	e := item.Value()
	if !c.valid(e) {
		c.store.Delete(key)
		c.metrics.Expire()
		c.logger.Info("cache expired", "key", key)
		return zero, false
	}

	return e.value, true
}

// Peek returns the cached value for key without fetching.
func (c *Cache[V]) Peek(key string) (V, bool) {
	return c.lookup(key)
}

// Get returns the cached value for key, or runs fetch and stores its result.
// Failed fetches are not stored. Concurrent misses on the same key share one fetch.
func (c *Cache[V]) Get(ctx context.Context, key string, fetch Fetch[V]) (V, error) {
	if v, ok := c.lookup(key); ok {
		c.metrics.Hit()
		c.logger.Debug("cache hit", "key", key)
		return v, nil
	}

	c.metrics.Miss()
	c.logger.Debug("cache miss", "key", key)

	// The shared fetch outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	result, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch(shared)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	v, _ := result.(V)
	return v, err
}

// Set stores value under key, stamped with the current time.
func (c *Cache[V]) Set(key string, value V) {
	c.store.Set(key, entry[V]{value: value, storedAt: c.now()}, ttlcache.NoTTL)
	c.logger.Debug("cached", "key", key)
}

// Invalidate removes key. It reports whether an entry was present.
func (c *Cache[V]) Invalidate(key string) bool {
	if !c.store.Has(key) {
		return false
	}
	c.store.Delete(key)
	c.logger.Info("cache invalidated", "key", key)
	return true
}

func (c *Cache[V]) Clear() {
	c.store.DeleteAll()
	c.logger.Info("cache cleared")
}

// Len counts stored entries, including ones that expired but were not yet accessed.
func (c *Cache[V]) Len() int {
	return c.store.Len()
}
