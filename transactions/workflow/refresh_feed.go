package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// RefreshFeedParams contains parameters for starting the refresh workflow
type RefreshFeedParams struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// RefreshFeedResult is returned once the feed has been loaded again
type RefreshFeedResult struct {
	Count       int       `json:"count"`
	CompletedAt time.Time `json:"completed_at"`
}

// RefreshFeed invalidates the cached transaction feed and re-fetches it
func RefreshFeed(ctx workflow.Context, params RefreshFeedParams) (*RefreshFeedResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting refresh feed workflow", "reason", params.Reason, "requestedAt", params.RequestedAt)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        4,
			NonRetryableErrorTypes: []string{dependencyErrorType},
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var count int
	if err := workflow.ExecuteActivity(activityCtx, RefreshFeedActivity).Get(ctx, &count); err != nil {
		logger.Error("Failed to refresh feed", "reason", params.Reason, "error", err)
		return nil, err
	}

	logger.Info("Refresh feed workflow completed", "count", count)
	return &RefreshFeedResult{
		Count:       count,
		CompletedAt: workflow.Now(ctx),
	}, nil
}
