package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// GetByLogin matches identifier against username or email.
	GetByLogin(ctx context.Context, identifier string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (usernameTaken bool, emailTaken bool, err error)
	UpdateEmail(ctx context.Context, id, email string) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
