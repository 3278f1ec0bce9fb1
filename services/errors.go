package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrClaimNotAllowed    = errors.New("gift is reserved for parents")
)
