package product

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusExpected  Status = "expected"
	StatusConfirmed Status = "confirmed"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit"`
	Quantity     int             `json:"quantity"`
	ProviderID   int64           `json:"provider_id"`
	ProviderName string          `json:"provider_name,omitempty"`
	Year         int             `json:"year"`
	Week         int             `json:"week_number"`
	Status       Status          `json:"status"`
	Notified     bool            `json:"notified"`
}

// ExpectedInput is one row of a weekly declaration. ID is the caller's
// submission-local id and is only echoed back as old_id.
type ExpectedInput struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
}

// UnmarshalJSON also accepts the category under "category_id", the name used
// by the product read model.
func (in *ExpectedInput) UnmarshalJSON(data []byte) error {
	type Alias ExpectedInput
	aux := struct {
		*Alias
		LegacyCategoryID int64 `json:"category_id"`
	}{Alias: (*Alias)(in)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if in.CategoryID == 0 {
		in.CategoryID = aux.LegacyCategoryID
	}
	return nil
}

type IDMapping struct {
	OldID int64 `json:"old_id"`
	NewID int64 `json:"new_id"`
}
