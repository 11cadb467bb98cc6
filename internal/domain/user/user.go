// Package user holds the user aggregate. Eduhub has exactly two roles:
// students who consume content and raise support tickets, and admins who
// manage content and answer them.
package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "eduhub/internal/domain/user/valueobjects"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/biztime"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type User struct {
	id           uint
	name         vo.Name
	email        string
	passwordHash string
	role         authorization.UserRole
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	parsedName, err := vo.NewName(name)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		name:         parsedName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persisted state.
func ReconstructUser(
	id uint,
	name vo.Name,
	email string,
	passwordHash string,
	role authorization.UserRole,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() vo.Name {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Deactivate disables login for the user without deleting history.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}
