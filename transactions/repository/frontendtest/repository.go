package frontendtest

import (
	"context"
	"strings"

	"txview.app/transactions/model"
)

const transactionsPath = "/frontend-test"

// Querier reads the transaction feed.
type Querier interface {
	GetTransactions(ctx context.Context) (model.FeedResponse, error)
	// Invalidate drops any cached copy of the feed so the next read hits the network.
	Invalidate()
}

// HTTPGetter is the subset of httpclient.Client the repository needs.
type HTTPGetter interface {
	Get(ctx context.Context, url string, out any) error
	InvalidateCacheEntry(url string)
}

type repository struct {
	http HTTPGetter
	url  string
}

// New returns a Querier for the feed served under baseURL.
func New(http HTTPGetter, baseURL string) Querier {
	return &repository{
		http: http,
		url:  strings.TrimRight(baseURL, "/") + transactionsPath,
	}
}

func (r *repository) GetTransactions(ctx context.Context) (model.FeedResponse, error) {
	var feed model.FeedResponse
	if err := r.http.Get(ctx, r.url, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

func (r *repository) Invalidate() {
	r.http.InvalidateCacheEntry(r.url)
}
