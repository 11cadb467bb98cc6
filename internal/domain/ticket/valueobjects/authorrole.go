package valueobjects

import "fmt"

// AuthorRole records who wrote a reply. The role is stored explicitly on
// every reply row; it is never inferred by comparing the author ID with the
// ticket owner.
type AuthorRole string

const (
	AuthorStudent AuthorRole = "student"
	AuthorAdmin   AuthorRole = "admin"
)

func (r AuthorRole) String() string {
	return string(r)
}

func (r AuthorRole) IsValid() bool {
	return r == AuthorStudent || r == AuthorAdmin
}

func (r AuthorRole) IsAdmin() bool {
	return r == AuthorAdmin
}

func NewAuthorRole(s string) (AuthorRole, error) {
	role := AuthorRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid author role: %s", s)
	}
	return role, nil
}
