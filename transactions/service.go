package transactions

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"txview.app/transactions/business/transaction"
	"txview.app/transactions/cache"
	"txview.app/transactions/httpclient"
	"txview.app/transactions/repository/frontendtest"
	"txview.app/transactions/workflow"
)

//encore:service
type Service struct {
	business transaction.Business
	temporal client.Client
	worker   worker.Worker

	workerStarted atomic.Bool
}

func initService() (*Service, error) {
	feedCache := cache.New[[]byte](
		cache.WithName("feed"),
		cache.WithTTL(cacheTTL()),
		cache.WithCapacity(uint64(cfg.CacheCapacity())),
		cache.WithMetrics(feedCacheMetrics{}),
	)

	httpClient := httpclient.New(
		httpclient.WithHTTPClient(&http.Client{Timeout: httpTimeout()}),
		httpclient.WithCache(feedCache),
	)

	rlog.Info("Initializing feed repository", "base_url", cfg.BaseURL())
	repo := frontendtest.New(httpClient, cfg.BaseURL())
	business := transaction.NewTransactionBusiness(repo, retryOptions()...)

	workflow.SetActivityDependencies(business)

	temporalClient, err := client.NewLazyClient(client.Options{
		HostPort:  cfg.TemporalHost(),
		Namespace: cfg.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(temporalClient, cfg.TaskQueue(), worker.Options{})
	w.RegisterWorkflow(workflow.RefreshFeed)
	w.RegisterActivity(workflow.RefreshFeedActivity)

	s := &Service{
		business: business,
		temporal: temporalClient,
		worker:   w,
	}

	// The read endpoints never touch Temporal, so a missing server only
	// disables refresh.
	s.startWorker()

	if cfg.WarmOnStart() {
		s.warmFeed()
	}

	return s, nil
}

func (s *Service) startWorker() {
	runAsync("start_temporal_worker", func(ctx context.Context) error {
		if err := s.worker.Start(); err != nil {
			return fmt.Errorf("start temporal worker: %w", err)
		}
		s.workerStarted.Store(true)
		rlog.Info("temporal worker started", "task_queue", cfg.TaskQueue())
		return nil
	})
}

// warmFeed loads the feed in the background so the first list request is served from cache.
func (s *Service) warmFeed() {
	runAsync("warm_feed", func(ctx context.Context) error {
		list, err := s.business.ListTransactions(ctx, transaction.Query{})
		if err != nil {
			return err
		}
		rlog.Info("feed warmed", "count", len(list))
		return nil
	})
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil && s.workerStarted.Load() {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
