package transaction

import (
	"context"
	"slices"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"txview.app/transactions/model"
	"txview.app/transactions/retry"
)

// fetchTransactions loads the feed with retries and flattens it, ordered by ID.
func (b *business) fetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	opts := append([]retry.Option{retry.WithName("GetTransactions")}, b.retryOpts...)

	feed, err := retry.Do(ctx, b.feedRepo.GetTransactions, opts...)
	if err != nil {
		rlog.Error("failed to fetch transactions", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to fetch transactions"}
	}

	list := make([]model.Transaction, 0, len(feed))
	for id, tx := range feed {
		if tx.ID == "" {
			tx.ID = id
		}
		list = append(list, tx)
	}
	slices.SortFunc(list, func(a, b model.Transaction) int {
		return strings.Compare(a.ID, b.ID)
	})

	return list, nil
}
