package transactions

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"txview.app/transactions/workflow"
)

const refreshWorkflowPrefix = "transactions-refresh-"

type RefreshTransactionsRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Reason string `json:"reason" validate:"omitempty,max=100"`
}

type RefreshTransactionsResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

//encore:api public path=/v1/feed/refresh method=POST tag:idempotency
func (s *Service) RefreshTransactions(ctx context.Context, req *RefreshTransactionsRequest) (*RefreshTransactionsResponse, error) {
	reason := req.Reason
	if reason == "" {
		reason = "manual"
	}

	workflowID := refreshWorkflowID(req.IdempotencyKey)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: cfg.TaskQueue(),
	}

	params := workflow.RefreshFeedParams{
		Reason:      reason,
		RequestedAt: time.Now(),
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.RefreshFeed, params)
	if err != nil {
		rlog.Error("failed to start refresh workflow", "error", err, "workflow_id", workflowID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start feed refresh"}
	}

	rlog.Info("refresh workflow started", "workflow_id", run.GetID(), "run_id", run.GetRunID(), "reason", reason)
	return &RefreshTransactionsResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

// Validate implements validation for RefreshTransactionsRequest using go-playground/validator
func (r *RefreshTransactionsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func refreshWorkflowID(idempotencyKey string) string {
	if idempotencyKey != "" {
		return fmt.Sprintf("%s%s", refreshWorkflowPrefix, idempotencyKey)
	}
	return refreshWorkflowPrefix + uuid.NewString()
}
