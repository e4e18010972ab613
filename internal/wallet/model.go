package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Transaction struct {
	ID        int64           `json:"id"`
	ClientID  int64           `json:"client_id"`
	MethodID  int64           `json:"method_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type TransactionInput struct {
	ClientID int64           `json:"client_id"`
	MethodID int64           `json:"method_id"`
	Amount   decimal.Decimal `json:"amount"`
}
