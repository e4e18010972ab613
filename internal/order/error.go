package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("order item not found")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownState      = errors.New("unknown order item state")
	ErrInvalidTransition = errors.New("invalid order item state transition")
	ErrNoProducts        = errors.New("no products given")
	ErrInvalidWeek       = errors.New("invalid year or week")
)
