package transactions

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"txview.app/transactions/format"
	"txview.app/transactions/model"
)

// DetailLabel is one label/value row of the detail view.
type DetailLabel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TransactionDetailResponse struct {
	Transaction TransactionItem `json:"transaction"`
	HeaderTitle string          `json:"header_title"`
	Labels      []DetailLabel   `json:"labels"`
}

//encore:api public path=/v1/transactions/:id method=GET
func (s *Service) GetTransaction(ctx context.Context, id string) (*TransactionDetailResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid transaction ID"}
	}

	tx, err := s.business.GetTransaction(ctx, id)
	if err != nil {
		rlog.Error("failed to get transaction", "error", err, "id", id)
		return nil, err
	}

	return &TransactionDetailResponse{
		Transaction: toTransactionItem(*tx),
		HeaderTitle: "#" + tx.ID,
		Labels:      detailLabels(*tx),
	}, nil
}

func detailLabels(tx model.Transaction) []DetailLabel {
	return []DetailLabel{
		{Label: strings.ToUpper(tx.BeneficiaryName), Value: tx.AccountNumber},
		{Label: "Nominal", Value: format.Currency(tx.Amount)},
		{Label: "Berita Transfer", Value: tx.Remark},
		{Label: "Kode Unik", Value: string(tx.UniqueCode)},
		{Label: "Waktu Dibuat", Value: format.Date(tx.CreatedAt.Time)},
		{Label: "Status", Value: tx.Status.Label()},
	}
}
