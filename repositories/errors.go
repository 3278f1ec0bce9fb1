package repositories

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrGiftNotFound   = errors.New("gift not found")
)
