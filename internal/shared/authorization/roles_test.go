package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  UserRole
		ok    bool
	}{
		{name: "lowercase user", input: "user", want: RoleUser, ok: true},
		{name: "lowercase admin", input: "admin", want: RoleAdmin, ok: true},
		{name: "uppercase wire value", input: "ADMIN", want: RoleAdmin, ok: true},
		{name: "mixed case", input: "User", want: RoleUser, ok: true},
		{name: "unknown role", input: "moderator", ok: false},
		{name: "empty role", input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseUserRole(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseUserRoleOrDefault(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRoleOrDefault("admin"))
	assert.Equal(t, RoleUser, ParseUserRoleOrDefault("garbage"))
	assert.Equal(t, RoleUser, ParseUserRoleOrDefault(""))
}

func TestUserRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, UserRole("ADMIN").IsAdmin(), "roles compare exactly once parsed")
}

func TestCanAccessResourceByOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		role    UserRole
		ownerID uint
		want    bool
	}{
		{name: "owner may access", userID: 5, role: RoleUser, ownerID: 5, want: true},
		{name: "non-owner user denied", userID: 6, role: RoleUser, ownerID: 5, want: false},
		{name: "admin may access any resource", userID: 99, role: RoleAdmin, ownerID: 5, want: true},
		{name: "admin accessing own resource", userID: 5, role: RoleAdmin, ownerID: 5, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAccessResourceByOwnerID(tc.userID, tc.role, tc.ownerID))
		})
	}
}
