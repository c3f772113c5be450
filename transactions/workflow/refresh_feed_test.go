package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	txmock "txview.app/transactions/mocks/business/transaction_business"
)

func newTestEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(RefreshFeedActivity)
	return env
}

func TestRefreshFeedWorkflow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := txmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	env := newTestEnv(t)
	mockBiz.EXPECT().RefreshTransactions(gomock.Any()).Return(12, nil).Times(1)

	env.ExecuteWorkflow(RefreshFeed, RefreshFeedParams{Reason: "manual", RequestedAt: time.Now()})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result RefreshFeedResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, 12, result.Count)
}

func TestRefreshFeedWorkflow_RetriesActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := txmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	env := newTestEnv(t)
	gomock.InOrder(
		mockBiz.EXPECT().RefreshTransactions(gomock.Any()).
			Return(0, &errs.Error{Code: errs.Unavailable, Message: "failed to fetch transactions"}).Times(2),
		mockBiz.EXPECT().RefreshTransactions(gomock.Any()).Return(3, nil).Times(1),
	)

	env.ExecuteWorkflow(RefreshFeed, RefreshFeedParams{Reason: "manual"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result RefreshFeedResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, 3, result.Count)
}

func TestRefreshFeedWorkflow_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBiz := txmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	env := newTestEnv(t)
	mockBiz.EXPECT().RefreshTransactions(gomock.Any()).Return(0, errors.New("upstream down")).Times(4)

	env.ExecuteWorkflow(RefreshFeed, RefreshFeedParams{Reason: "manual"})
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FEED_REFRESH_FAILED", appErr.Type())
}

func TestRefreshFeedWorkflow_MissingDependencies(t *testing.T) {
	activityDeps = nil
	t.Cleanup(func() { activityDeps = nil })

	env := newTestEnv(t)
	env.ExecuteWorkflow(RefreshFeed, RefreshFeedParams{Reason: "manual"})
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, dependencyErrorType, appErr.Type())
}
