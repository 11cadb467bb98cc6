package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned by repositories when no user matches.
var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
