package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUser        = errors.New("invalid user")
	ErrEmailExists        = errors.New("email already registered")
)
