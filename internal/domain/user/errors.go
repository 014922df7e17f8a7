package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrUsernameExists          = errors.New("username already taken")
	ErrInvalidOAuthProvider    = errors.New("invalid oauth provider")
	ErrOAuthProviderIDExists   = errors.New("oauth provider id already registered")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
