package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("invalid client")
	ErrEmailExists    = errors.New("email already registered")
)
