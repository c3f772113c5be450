package transaction

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"

	"txview.app/transactions/listing"
	"txview.app/transactions/model"
)

// ListTransactions handles the business logic for the transaction list view
func (b *business) ListTransactions(ctx context.Context, q Query) ([]model.Transaction, error) {
	search, err := searchStep(q)
	if err != nil {
		return nil, err
	}

	order, err := sortStep(q.Sort)
	if err != nil {
		return nil, err
	}

	list, err := b.fetchTransactions(ctx)
	if err != nil {
		return nil, err
	}

	return listing.Pipe(search, order)(list), nil
}

func searchStep(q Query) (listing.Step[model.Transaction], error) {
	names := q.Fields
	if len(names) == 0 {
		names = model.DefaultSearchFields
	}

	fields := make([]listing.Field[model.Transaction], 0, len(names))
	for _, name := range names {
		if _, ok := (model.Transaction{}).Value(name); !ok {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unknown search field %q", name)}
		}
		field := name
		fields = append(fields, func(tx model.Transaction) (string, bool) {
			return tx.Value(field)
		})
	}

	return func(list []model.Transaction) []model.Transaction {
		return listing.Search(list, fields, q.Search)
	}, nil
}

func sortStep(option model.SortOption) (listing.Step[model.Transaction], error) {
	switch option {
	case model.SortNone:
		return nil, nil
	case model.SortNameAsc:
		return sortByName(listing.Asc), nil
	case model.SortNameDesc:
		return sortByName(listing.Desc), nil
	case model.SortDateAsc:
		return sortByCreatedAt(listing.Asc), nil
	case model.SortDateDesc:
		return sortByCreatedAt(listing.Desc), nil
	default:
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unknown sort option %q", option)}
	}
}

func sortByName(order listing.Order) listing.Step[model.Transaction] {
	return func(list []model.Transaction) []model.Transaction {
		return listing.SortAlphabetically(list, func(tx model.Transaction) string {
			return tx.BeneficiaryName
		}, order)
	}
}

func sortByCreatedAt(order listing.Order) listing.Step[model.Transaction] {
	return func(list []model.Transaction) []model.Transaction {
		return listing.SortByDate(list, func(tx model.Transaction) (time.Time, bool) {
			return tx.CreatedAt.Time, tx.CreatedAt.Valid()
		}, order)
	}
}
