package transactions

import (
	"strings"

	"txview.app/transactions/format"
	"txview.app/transactions/model"
)

// TransactionItem is a feed record as shown in the list, with its raw
// fields and the display strings derived from them.
type TransactionItem struct {
	ID              string `json:"id"`
	Amount          string `json:"amount"`
	UniqueCode      string `json:"unique_code"`
	Status          string `json:"status"`
	SenderBank      string `json:"sender_bank"`
	AccountNumber   string `json:"account_number"`
	BeneficiaryName string `json:"beneficiary_name"`
	BeneficiaryBank string `json:"beneficiary_bank"`
	Remark          string `json:"remark"`
	CreatedAt       string `json:"created_at"`
	CompletedAt     string `json:"completed_at"`
	Fee             string `json:"fee"`

	SenderBankDisplay      string `json:"sender_bank_display"`
	BeneficiaryBankDisplay string `json:"beneficiary_bank_display"`
	BeneficiaryNameDisplay string `json:"beneficiary_name_display"`
	AmountDisplay          string `json:"amount_display"`
	DateDisplay            string `json:"date_display"`
	StatusLabel            string `json:"status_label"`
	PillType               string `json:"pill_type"`
}

func toTransactionItem(tx model.Transaction) TransactionItem {
	return TransactionItem{
		ID:              tx.ID,
		Amount:          tx.Amount.String(),
		UniqueCode:      string(tx.UniqueCode),
		Status:          string(tx.Status),
		SenderBank:      tx.SenderBank,
		AccountNumber:   tx.AccountNumber,
		BeneficiaryName: tx.BeneficiaryName,
		BeneficiaryBank: tx.BeneficiaryBank,
		Remark:          tx.Remark,
		CreatedAt:       tx.CreatedAt.String(),
		CompletedAt:     tx.CompletedAt.String(),
		Fee:             tx.Fee.String(),

		SenderBankDisplay:      format.CapitalizeBank(tx.SenderBank),
		BeneficiaryBankDisplay: format.CapitalizeBank(tx.BeneficiaryBank),
		BeneficiaryNameDisplay: strings.ToUpper(tx.BeneficiaryName),
		AmountDisplay:          format.Currency(tx.Amount),
		DateDisplay:            format.Date(tx.CreatedAt.Time),
		StatusLabel:            tx.Status.Label(),
		PillType:               tx.Status.PillType(),
	}
}
