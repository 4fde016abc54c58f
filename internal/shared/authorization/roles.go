// Package authorization defines user roles and the role-gated route guards.
package authorization

import "strings"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole parses a role string case-insensitively. Clients may
// send uppercase enum values (USER, ADMIN) over the wire.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(strings.ToLower(s))
	if role.IsValid() {
		return role, true
	}
	return "", false
}

// ParseUserRoleOrDefault parses a role string, falling back to RoleUser.
func ParseUserRoleOrDefault(s string) UserRole {
	if role, ok := ParseUserRole(s); ok {
		return role
	}
	return RoleUser
}
