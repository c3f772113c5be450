package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout is the wire format of every timestamp in the feed.
const DateTimeLayout = "2006-01-02 15:04:05"

// Feed timestamps carry no zone; they are Western Indonesia Time.
var FeedLocation = time.FixedZone("WIB", 7*60*60)

type Transaction struct {
	ID              string            `json:"id"`
	Amount          decimal.Decimal   `json:"amount"`
	UniqueCode      UniqueCode        `json:"unique_code"`
	Status          TransactionStatus `json:"status"`
	SenderBank      string            `json:"sender_bank"`
	AccountNumber   string            `json:"account_number"`
	BeneficiaryName string            `json:"beneficiary_name"`
	BeneficiaryBank string            `json:"beneficiary_bank"`
	Remark          string            `json:"remark"`
	CreatedAt       DateTime          `json:"created_at"`
	CompletedAt     DateTime          `json:"completed_at"`
	Fee             decimal.Decimal   `json:"fee"`
}

// FeedResponse is the body of GET /frontend-test, keyed by transaction ID.
type FeedResponse map[string]Transaction

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
)

// Label is the user-facing status text.
func (s TransactionStatus) Label() string {
	switch s {
	case TransactionStatusSuccess:
		return "Berhasil"
	case TransactionStatusPending:
		return "Pengecekan"
	default:
		return string(s)
	}
}

// PillType maps the status to its badge style.
func (s TransactionStatus) PillType() string {
	if s == TransactionStatusPending {
		return "warning"
	}
	return "success"
}

func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusPending || s == TransactionStatusSuccess
}

// DateTime is a feed timestamp. Values that do not have the exact shape of
// DateTimeLayout are rejected. Well-shaped values naming no real instant
// (month 13, Feb 30) decode as invalid dates that keep their raw text.
type DateTime struct {
	time.Time
	raw string
}

var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

var ErrDateFormat = errors.New("expected format YYYY-MM-DD HH:MM:SS")

// ParseDateTime parses s in DateTimeLayout, interpreted in FeedLocation.
func ParseDateTime(s string) (DateTime, error) {
	if !dateTimePattern.MatchString(s) {
		return DateTime{}, fmt.Errorf("invalid date %q: %w", s, ErrDateFormat)
	}

	t, err := time.ParseInLocation(DateTimeLayout, s, FeedLocation)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return DateTime{Time: t}, nil
}

// Valid reports whether d holds a real instant.
func (d DateTime) Valid() bool {
	return !d.IsZero()
}

func (d DateTime) String() string {
	if d.IsZero() {
		return d.raw
	}
	return d.In(FeedLocation).Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid date %s: expected a string", data)
	}

	parsed, err := ParseDateTime(s)
	switch {
	case errors.Is(err, ErrDateFormat):
		return err
	case err != nil:
		*d = DateTime{raw: s}
		return nil
	}

	*d = parsed
	return nil
}

// UniqueCode is served either as a JSON string or a JSON number.
type UniqueCode string

func (c *UniqueCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = UniqueCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid unique_code %s: %w", data, err)
	}

	*c = UniqueCode(n.String())
	return nil
}
