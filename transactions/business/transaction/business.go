package transaction

import (
	"context"

	"txview.app/transactions/model"
	"txview.app/transactions/repository/frontendtest"
	"txview.app/transactions/retry"
)

// Query describes the list view: free-text search over Fields, then Sort.
type Query struct {
	Search string
	Fields []model.SearchField
	Sort   model.SortOption
}

type Business interface {
	ListTransactions(ctx context.Context, q Query) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	RefreshTransactions(ctx context.Context) (int, error)
}

// business serves the list and detail views from the feed.
type business struct {
	feedRepo  frontendtest.Querier
	retryOpts []retry.Option
}

// NewTransactionBusiness creates the business layer over the feed repository.
// retryOpts tune the backoff applied to every feed fetch.
func NewTransactionBusiness(feedRepo frontendtest.Querier, retryOpts ...retry.Option) Business {
	return &business{
		feedRepo:  feedRepo,
		retryOpts: retryOpts,
	}
}
