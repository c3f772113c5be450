package transactions

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"txview.app/transactions/business/transaction"
	"txview.app/transactions/model"
)

type ListTransactionsRequest struct {
	Search string   `query:"search" validate:"max=100"`
	Sort   string   `query:"sort" validate:"omitempty,oneof=name_asc name_desc date_desc date_asc"`
	Fields []string `query:"fields" validate:"dive,oneof=id beneficiary_name sender_bank beneficiary_bank amount account_number remark"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
	Total        int               `json:"total"`
}

//encore:api public path=/v1/transactions method=GET
func (s *Service) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	query := transaction.Query{
		Search: req.Search,
		Sort:   model.SortOption(req.Sort),
	}
	for _, f := range req.Fields {
		query.Fields = append(query.Fields, model.SearchField(f))
	}

	list, err := s.business.ListTransactions(ctx, query)
	if err != nil {
		rlog.Error("failed to list transactions", "error", err, "search", req.Search, "sort", req.Sort)
		return nil, err
	}

	response := &ListTransactionsResponse{
		Transactions: make([]TransactionItem, len(list)),
		Total:        len(list),
	}
	for i, tx := range list {
		response.Transactions[i] = toTransactionItem(tx)
	}

	return response, nil
}

// Validate implements validation for ListTransactionsRequest using go-playground/validator
func (r *ListTransactionsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
