package transactions

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = time.Minute

// runAsync is swapped out in tests to run background work inline.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine with a timeout and logs its outcome.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
