package wallet

import "errors"

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidTransaction = errors.New("invalid transaction")
)
