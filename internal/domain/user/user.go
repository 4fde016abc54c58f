// Package user contains the user aggregate. Users are created at
// registration and mutated only by role updates; they are never deleted.
package user

import (
	"fmt"
	"strings"
	"time"

	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/biztime"
)

type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 100 {
		return nil, fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	if len(strings.TrimSpace(email)) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:  username,
		email:     email,
		role:      authorization.RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

// PasswordHash returns the opaque stored hash. It is never serialized in
// any response DTO.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
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

// ChangeRole overwrites the role unconditionally. There is no
// self-demotion guard: an admin may revoke their own admin role.
func (u *User) ChangeRole(newRole authorization.UserRole) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if u.role == newRole {
		return nil
	}

	u.role = newRole
	u.updatedAt = biztime.NowUTC()
	return nil
}
