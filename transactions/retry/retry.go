package retry

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
	DefaultMaxDelay     = 10 * time.Second
)

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

type options struct {
	name         string
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	sleep        Sleeper
}

type Option func(*options)

// WithName sets the logger name used for attempt logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.initialDelay = d
		}
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxDelay = d
		}
	}
}

func WithSleeper(s Sleeper) Option {
	return func(o *options) {
		if s != nil {
			o.sleep = s
		}
	}
}

// Delay returns the wait before retrying after the given 0-based attempt:
// min(initial * 2^attempt, maxDelay).
func Delay(attempt int, initial, maxDelay time.Duration) time.Duration {
	if initial <= 0 {
		return 0
	}

	d := initial
	for i := 0; i < attempt; i++ {
		if d > maxDelay/2 {
			return maxDelay
		}
		d *= 2
	}

	if d > maxDelay {
		return maxDelay
	}
	return d
}

// Do runs op, retrying failures with exponential backoff. op runs at most
// maxRetries+1 times; when every attempt fails the last error is returned.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		name:         "retry",
		maxRetries:   DefaultMaxRetries,
		initialDelay: DefaultInitialDelay,
		maxDelay:     DefaultMaxDelay,
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := rlog.With("component", o.name)

	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("attempt succeeded after retries", "attempt", attempt+1)
			}
			return result, nil
		}

		if attempt >= o.maxRetries {
			logger.Error("operation failed after retries",
				"retries", o.maxRetries,
				"attempts", attempt+1,
				"error", err,
			)
			return result, err
		}

		delay := Delay(attempt, o.initialDelay, o.maxDelay)
		logger.Warn("attempt failed, retrying",
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		if sleepErr := o.sleep(ctx, delay); sleepErr != nil {
			logger.Warn("retry aborted", "attempt", attempt+1, "error", sleepErr)
			return result, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
