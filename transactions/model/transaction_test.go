package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedRecord = `{
	"id": "FT16698",
	"amount": 4032963,
	"unique_code": 817,
	"status": "SUCCESS",
	"sender_bank": "bni",
	"account_number": "4297714999",
	"beneficiary_name": "Jaxon Lynch",
	"beneficiary_bank": "muamalat",
	"remark": "sample remark",
	"created_at": "2024-08-17 09:15:30",
	"completed_at": "2024-08-17 09:16:02",
	"fee": 0
}`

func TestTransactionUnmarshal(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(feedRecord), &tx))

	assert.Equal(t, "FT16698", tx.ID)
	assert.True(t, decimal.NewFromInt(4032963).Equal(tx.Amount))
	assert.Equal(t, UniqueCode("817"), tx.UniqueCode)
	assert.Equal(t, TransactionStatusSuccess, tx.Status)
	assert.Equal(t, "Jaxon Lynch", tx.BeneficiaryName)
	assert.Equal(t, time.Date(2024, time.August, 17, 9, 15, 30, 0, FeedLocation).Unix(), tx.CreatedAt.Unix())
	assert.True(t, tx.Fee.IsZero())
}

func TestParseDateTime(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedError string
	}{
		{name: "valid", input: "2024-08-17 09:15:30"},
		{name: "iso_format_rejected", input: "2024-08-17T09:15:30", expectedError: "expected format YYYY-MM-DD HH:MM:SS"},
		{name: "date_only_rejected", input: "2024-08-17", expectedError: "expected format YYYY-MM-DD HH:MM:SS"},
		{name: "unpadded_rejected", input: "2024-8-17 9:15:30", expectedError: "expected format YYYY-MM-DD HH:MM:SS"},
		{name: "double_space_short_hour_rejected", input: "2024-08-12  8:00:00", expectedError: "expected format YYYY-MM-DD HH:MM:SS"},
		{name: "trailing_space_rejected", input: "2024-08-12 08:00:00 ", expectedError: "expected format YYYY-MM-DD HH:MM:SS"},
		{name: "out_of_range_month", input: "2024-13-17 09:15:30", expectedError: "invalid date"},
		{name: "empty", input: "", expectedError: "invalid date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDateTime(tc.input)
			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, d.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.input, d.String())
		})
	}
}

func TestTransactionUnmarshal_InvalidDateFails(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"id":"FT1","created_at":"17/08/2024"}`), &tx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "17/08/2024")
}

func TestFeedUnmarshal_CalendarInvalidDateKeepsRecord(t *testing.T) {
	body := `{
		"FT1": {"id": "FT1", "created_at": "2024-13-01 10:00:00"},
		"FT2": {"id": "FT2", "created_at": "2024-08-17 09:15:30"}
	}`

	var feed FeedResponse
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	require.Len(t, feed, 2)

	invalid := feed["FT1"].CreatedAt
	assert.False(t, invalid.Valid())
	assert.Equal(t, "2024-13-01 10:00:00", invalid.String())

	b, err := json.Marshal(invalid)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-13-01 10:00:00"`, string(b))

	assert.True(t, feed["FT2"].CreatedAt.Valid())
}

func TestFeedUnmarshal_MisshapenDateFails(t *testing.T) {
	var feed FeedResponse
	err := json.Unmarshal([]byte(`{"FT1": {"id": "FT1", "created_at": "2024-08-12  8:00:00"}}`), &feed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestUniqueCode_AcceptsStringAndNumber(t *testing.T) {
	var fromString, fromNumber UniqueCode
	require.NoError(t, json.Unmarshal([]byte(`"123"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`123`), &fromNumber))
	assert.Equal(t, UniqueCode("123"), fromString)
	assert.Equal(t, fromString, fromNumber)
}

func TestDateTime_MarshalRoundTrip(t *testing.T) {
	d, err := ParseDateTime("2024-01-02 03:04:05")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-02 03:04:05"`, string(b))
}

func TestTransactionStatus(t *testing.T) {
	assert.Equal(t, "Berhasil", TransactionStatusSuccess.Label())
	assert.Equal(t, "Pengecekan", TransactionStatusPending.Label())
	assert.Equal(t, "success", TransactionStatusSuccess.PillType())
	assert.Equal(t, "warning", TransactionStatusPending.PillType())
	assert.False(t, TransactionStatus("FAILED").Valid())
}

func TestTransactionValue(t *testing.T) {
	tx := Transaction{ID: "FT1", BeneficiaryName: "Alice", Amount: decimal.NewFromInt(10000)}

	v, ok := tx.Value(SearchFieldAmount)
	assert.True(t, ok)
	assert.Equal(t, "10000", v)

	v, ok = tx.Value(SearchFieldBeneficiaryName)
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)

	_, ok = tx.Value(SearchField("unknown"))
	assert.False(t, ok)
}

func TestSortOptions(t *testing.T) {
	options := SortOptions()
	assert.Len(t, options, 5)
	assert.Equal(t, SortNone, options[0].Value)
	assert.Equal(t, "Nama A-Z", SortNameAsc.Label())

	options[0].Label = "changed"
	assert.Equal(t, "URUTKAN", SortOptions()[0].Label)
}
