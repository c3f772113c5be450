package model

type SortOption string

const (
	SortNone     SortOption = ""
	SortNameAsc  SortOption = "name_asc"
	SortNameDesc SortOption = "name_desc"
	SortDateDesc SortOption = "date_desc"
	SortDateAsc  SortOption = "date_asc"
)

type SortOptionInfo struct {
	Label string     `json:"label"`
	Value SortOption `json:"value"`
}

var sortOptions = []SortOptionInfo{
	{Label: "URUTKAN", Value: SortNone},
	{Label: "Nama A-Z", Value: SortNameAsc},
	{Label: "Nama Z-A", Value: SortNameDesc},
	{Label: "Tanggal Terbaru", Value: SortDateDesc},
	{Label: "Tanggal Terlama", Value: SortDateAsc},
}

// SortOptions returns the options offered by the list view, in display order.
func SortOptions() []SortOptionInfo {
	out := make([]SortOptionInfo, len(sortOptions))
	copy(out, sortOptions)
	return out
}

func (o SortOption) Label() string {
	for _, info := range sortOptions {
		if info.Value == o {
			return info.Label
		}
	}
	return string(o)
}

// SearchField names a transaction field that free-text search looks at.
type SearchField string

const (
	SearchFieldID              SearchField = "id"
	SearchFieldBeneficiaryName SearchField = "beneficiary_name"
	SearchFieldSenderBank      SearchField = "sender_bank"
	SearchFieldBeneficiaryBank SearchField = "beneficiary_bank"
	SearchFieldAmount          SearchField = "amount"
	SearchFieldAccountNumber   SearchField = "account_number"
	SearchFieldRemark          SearchField = "remark"
)

// DefaultSearchFields is what the list view searches when no fields are given.
var DefaultSearchFields = []SearchField{
	SearchFieldBeneficiaryName,
	SearchFieldSenderBank,
	SearchFieldBeneficiaryBank,
	SearchFieldAmount,
}

// Value returns the string form of field f of t, or false for an unknown field.
func (t Transaction) Value(f SearchField) (string, bool) {
	switch f {
	case SearchFieldID:
		return t.ID, true
	case SearchFieldBeneficiaryName:
		return t.BeneficiaryName, true
	case SearchFieldSenderBank:
		return t.SenderBank, true
	case SearchFieldBeneficiaryBank:
		return t.BeneficiaryBank, true
	case SearchFieldAmount:
		return t.Amount.String(), true
	case SearchFieldAccountNumber:
		return t.AccountNumber, true
	case SearchFieldRemark:
		return t.Remark, true
	default:
		return "", false
	}
}
