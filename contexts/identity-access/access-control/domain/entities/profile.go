package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleBasic Role = "basic"
	RoleAdmin Role = "admin"
)

func IsValidRole(role Role) bool {
	return role == RoleBasic || role == RoleAdmin
}

// Profile is the authorization record attached to an authenticated principal.
// Exactly one per principal; created when the credential is provisioned.
type Profile struct {
	ID        string
	Email     string
	Role      Role
	IsBanned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     Role
}

func (i CreateUserInput) Validate() bool {
	return strings.TrimSpace(i.Email) != "" &&
		strings.TrimSpace(i.Password) != "" &&
		(i.Role == "" || IsValidRole(i.Role))
}
