package transaction

import (
	"context"

	"encore.dev/rlog"
)

// RefreshTransactions drops the cached feed and loads it again, returning the record count.
func (b *business) RefreshTransactions(ctx context.Context) (int, error) {
	b.feedRepo.Invalidate()

	list, err := b.fetchTransactions(ctx)
	if err != nil {
		return 0, err
	}

	rlog.Info("transactions refreshed", "count", len(list))
	return len(list), nil
}
