package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64           `json:"id"`
	ClientID   int64           `json:"client_id"`
	Total      decimal.Decimal `json:"total"`
	Pickup     bool            `json:"pickup"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	DeliveryAt *time.Time      `json:"delivery_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []Item          `json:"items"`
}

type Item struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	State       ItemState       `json:"state"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PlaceOrderInput struct {
	ClientID   int64            `json:"client_id"`
	Total      decimal.Decimal  `json:"total"`
	Pickup     bool             `json:"pickup"`
	Address    string           `json:"address"`
	City       string           `json:"city"`
	DeliveryAt *time.Time       `json:"delivery_at"`
	Items      []PlaceItemInput `json:"order_items"`
}

// PlaceItemInput asks for Quantity units of product ProductID.
type PlaceItemInput struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"qty"`
}

type Outcome string

const (
	OutcomePlaced   Outcome = "placed"
	OutcomeRejected Outcome = "rejected"
)

const (
	ReasonInsufficientStock = "insufficient_stock"
	ReasonStoreError        = "store_error"
)

type PlacedItem struct {
	ProductID   int64           `json:"product_id"`
	ItemID      int64           `json:"item_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      Outcome         `json:"status"`
	Reason      string          `json:"reason,omitempty"`
}

type PlaceResult struct {
	OrderID int64        `json:"order_id"`
	Items   []PlacedItem `json:"items"`
}

// BookedProduct is the ordered quantity of one product in one state.
type BookedProduct struct {
	ProductID     int64     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Unit          string    `json:"unit"`
	State         ItemState `json:"state"`
	TotalQuantity int       `json:"total_quantity"`
}

type PickupOrder struct {
	OrderID       int64           `json:"order_id"`
	ClientID      int64           `json:"client_id"`
	ClientName    string          `json:"client_name"`
	ClientSurname string          `json:"client_surname"`
	ClientEmail   string          `json:"client_email"`
	Total         decimal.Decimal `json:"total"`
	DeliveryAt    *time.Time      `json:"delivery_at,omitempty"`
	Items         []Item          `json:"items"`
}
