package auth

import "errors"

var (
	ErrUsernameAlreadyExists = errors.New("username already registered")
	ErrInvalidUsername       = errors.New("username must be 3-150 characters (letters, digits, _ . @ + -)")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials    = errors.New("username or password is incorrect")
	ErrSessionNotFound       = errors.New("session not found or expired")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrNotStaff              = errors.New("account does not have staff access")
	ErrProfileLinkFailed     = errors.New("account created but profile linking failed")
)
