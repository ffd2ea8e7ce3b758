package utils

import "errors"

var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrMembershipNotFound    = errors.New("no membership found")
	ErrInvalidMatchID        = errors.New("invalid match id")
	ErrMatchNotFound         = errors.New("match not found")
	ErrDatabaseNotConfigured = errors.New("database not configured")
	ErrDatabaseError         = errors.New("database error")
)
