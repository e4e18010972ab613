package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidWeek     = errors.New("invalid year or week")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrNotOwner        = errors.New("product does not belong to provider")
)
