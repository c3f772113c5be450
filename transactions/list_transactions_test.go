package transactions

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"txview.app/transactions/business/transaction"
	"txview.app/transactions/mocks/business/transaction_business"
	"txview.app/transactions/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

func sampleTransaction(t *testing.T) model.Transaction {
	t.Helper()
	created, err := model.ParseDateTime("2024-08-17 09:15:30")
	require.NoError(t, err)

	return model.Transaction{
		ID:              "FT16698",
		Amount:          decimal.NewFromInt(4032963),
		UniqueCode:      "817",
		Status:          model.TransactionStatusSuccess,
		SenderBank:      "bni",
		AccountNumber:   "4297714999",
		BeneficiaryName: "Jaxon Lynch",
		BeneficiaryBank: "muamalat",
		Remark:          "sample remark",
		CreatedAt:       created,
		CompletedAt:     created,
		Fee:             decimal.Zero,
	}
}

func TestListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := transaction_business.NewMockBusiness(ctrl)
	service := &Service{
		business: mockBusiness,
		temporal: mocks.NewClient(t),
	}

	tx := sampleTransaction(t)

	testCases := []struct {
		name          string
		request       *ListTransactionsRequest
		expectedQuery transaction.Query
		mockReturn    []model.Transaction
		mockError     error
		expectedError string
		expectedTotal int
	}{
		{
			name:          "search_and_sort_forwarded",
			request:       &ListTransactionsRequest{Search: "jax", Sort: "name_desc", Fields: []string{"beneficiary_name"}},
			expectedQuery: transaction.Query{Search: "jax", Sort: model.SortNameDesc, Fields: []model.SearchField{model.SearchFieldBeneficiaryName}},
			mockReturn:    []model.Transaction{tx},
			expectedTotal: 1,
		},
		{
			name:          "empty_result",
			request:       &ListTransactionsRequest{Search: "zzz"},
			expectedQuery: transaction.Query{Search: "zzz"},
			mockReturn:    []model.Transaction{},
			expectedTotal: 0,
		},
		{
			name:          "business_error",
			request:       &ListTransactionsRequest{},
			expectedQuery: transaction.Query{},
			mockError:     &errs.Error{Code: errs.Unavailable, Message: "failed to fetch transactions"},
			expectedError: "failed to fetch transactions",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				ListTransactions(gomock.Any(), tc.expectedQuery).
				Return(tc.mockReturn, tc.mockError).
				Times(1)

			response, err := service.ListTransactions(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, response)
			assert.Equal(t, tc.expectedTotal, response.Total)
			assert.Len(t, response.Transactions, tc.expectedTotal)
		})
	}
}

func TestToTransactionItem(t *testing.T) {
	item := toTransactionItem(sampleTransaction(t))

	assert.Equal(t, "FT16698", item.ID)
	assert.Equal(t, "4032963", item.Amount)
	assert.Equal(t, "817", item.UniqueCode)
	assert.Equal(t, "SUCCESS", item.Status)
	assert.Equal(t, "2024-08-17 09:15:30", item.CreatedAt)
	assert.Equal(t, "BNI", item.SenderBankDisplay)
	assert.Equal(t, "Muamalat", item.BeneficiaryBankDisplay)
	assert.Equal(t, "JAXON LYNCH", item.BeneficiaryNameDisplay)
	assert.Equal(t, "Rp4.032.963", item.AmountDisplay)
	assert.Equal(t, "17 Agustus 2024", item.DateDisplay)
	assert.Equal(t, "Berhasil", item.StatusLabel)
	assert.Equal(t, "success", item.PillType)
}

func TestToTransactionItem_Pending(t *testing.T) {
	tx := sampleTransaction(t)
	tx.Status = model.TransactionStatusPending
	tx.CreatedAt = model.DateTime{}

	item := toTransactionItem(tx)
	assert.Equal(t, "Pengecekan", item.StatusLabel)
	assert.Equal(t, "warning", item.PillType)
	assert.Equal(t, "", item.CreatedAt)
	assert.Equal(t, "", item.DateDisplay)
}

func TestListTransactionsRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *ListTransactionsRequest
		expectedError string
	}{
		{name: "empty_request", request: &ListTransactionsRequest{}},
		{name: "all_sorts_accepted", request: &ListTransactionsRequest{Sort: "date_asc"}},
		{name: "known_fields", request: &ListTransactionsRequest{Fields: []string{"id", "remark", "amount"}}},
		{name: "unknown_sort", request: &ListTransactionsRequest{Sort: "amount_desc"}, expectedError: "Sort"},
		{name: "unknown_field", request: &ListTransactionsRequest{Fields: []string{"fee"}}, expectedError: "Fields[0]"},
		{name: "search_too_long", request: &ListTransactionsRequest{Search: string(make([]byte, 101))}, expectedError: "Search"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
