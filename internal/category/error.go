package category

import "errors"

var (
	ErrInvalidName      = errors.New("category name cannot be empty")
	ErrCategoryNotFound = errors.New("category not found")
)
