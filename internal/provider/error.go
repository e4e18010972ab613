package provider

import "errors"

var (
	ErrProviderNotFound    = errors.New("provider not found")
	ErrApplicationNotFound = errors.New("pending application not found")
	ErrInvalidApplication  = errors.New("invalid application")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidWeek         = errors.New("invalid year or week")
	ErrNoProducts          = errors.New("no products given")
)
