package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid username/email or password")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrUserNotFound               = errors.New("user not found")
	ErrEmailAlreadyExists         = errors.New("email already registered")
	ErrUsernameTaken              = errors.New("username already taken")
	ErrGoogleAccountNotRegistered = errors.New("no account is registered with this google email")
)
