package provider

import (
	"time"

	"github.com/shopspring/decimal"
)

type Provider struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Surname   string            `json:"surname"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Company   string            `json:"company"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	DecidedAt *time.Time        `json:"decided_at,omitempty"`
}

type ApplyInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Password string `json:"password"`
}

// ExistingProduct is the latest declaration of a product name, used to prefill a new week.
type ExistingProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}

// SoldOutProduct is a confirmed product with no stock left that the farmer has not seen yet.
type SoldOutProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
	Week int    `json:"week_number"`
}
