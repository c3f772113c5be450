package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"txview.app/transactions/business/transaction"
)

const dependencyErrorType = "DependencyError"

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	TransactionBusiness transaction.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(transactionBusiness transaction.Business) {
	activityDeps = &ActivityDependencies{
		TransactionBusiness: transactionBusiness,
	}
}

// RefreshFeedActivity drops the cached feed, loads it again and reports the record count
func RefreshFeedActivity(ctx context.Context) (int, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing refresh feed activity", "attempt", activity.GetInfo(ctx).Attempt)

	if activityDeps == nil || activityDeps.TransactionBusiness == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", dependencyErrorType)
	}

	count, err := activityDeps.TransactionBusiness.RefreshTransactions(ctx)
	if err != nil {
		logger.Error("Failed to refresh feed", "error", err)
		return 0, temporal.NewApplicationError("failed to refresh feed", "FEED_REFRESH_FAILED", err)
	}

	logger.Info("Successfully refreshed feed", "count", count)
	return count, nil
}
