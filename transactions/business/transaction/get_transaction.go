package transaction

import (
	"context"

	"encore.dev/beta/errs"

	"txview.app/transactions/model"
)

// GetTransaction handles the business logic for the transaction detail view
func (b *business) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	list, err := b.fetchTransactions(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			tx := list[i]
			return &tx, nil
		}
	}

	return nil, &errs.Error{Code: errs.NotFound, Message: "transaction not found"}
}
