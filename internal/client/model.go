package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Budget    decimal.Decimal `json:"budget"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Gender    string          `json:"gender"`
	Birthdate *time.Time      `json:"birthdate,omitempty"`
	Country   string          `json:"country"`
	Region    string          `json:"region"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
}

type RegisterInput struct {
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Gender    string     `json:"gender"`
	Birthdate *time.Time `json:"birthdate"`
	Country   string     `json:"country"`
	Region    string     `json:"region"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
}
