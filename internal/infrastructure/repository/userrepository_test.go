package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func createTestUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, username+"@example.com")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword("secret99", plainHasher{}))
	return u
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create assigns store-generated ID", func(t *testing.T) {
		u := createTestUser(t, "alice")

		err := repo.Create(ctx, u)
		require.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username returns conflict", func(t *testing.T) {
		first := createTestUser(t, "bob")
		require.NoError(t, repo.Create(ctx, first))

		dup, err := user.NewUser("bob", "bob-other@example.com")
		require.NoError(t, err)
		require.NoError(t, dup.SetPassword("secret99", plainHasher{}))

		err = repo.Create(ctx, dup)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
		assert.Equal(t, "username already exists", appErr.Message)
	})

	t.Run("duplicate email returns conflict naming the email", func(t *testing.T) {
		first := createTestUser(t, "nina")
		require.NoError(t, repo.Create(ctx, first))

		dup, err := user.NewUser("nina2", "nina@example.com")
		require.NoError(t, err)
		require.NoError(t, dup.SetPassword("secret99", plainHasher{}))

		err = repo.Create(ctx, dup)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
		assert.Equal(t, "email already exists", appErr.Message)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("round-trips a created user", func(t *testing.T) {
		u := createTestUser(t, "carol")
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "carol", found.Username())
		assert.Equal(t, "carol@example.com", found.Email())
		assert.Equal(t, "hashed:secret99", found.PasswordHash())
		assert.Equal(t, authorization.RoleUser, found.Role())
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "dave")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("existing username", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "dave")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("absent username returns nil without error", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("persists a role change", func(t *testing.T) {
		u := createTestUser(t, "erin")
		require.NoError(t, repo.Create(ctx, u))

		require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin, found.Role())
		assert.True(t, found.IsAdmin())
	})

	t.Run("updating a nonexistent user returns not found", func(t *testing.T) {
		now := createTestUser(t, "ghost")
		require.NoError(t, now.SetID(4242))

		err := repo.Update(ctx, now)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "frank")
	require.NoError(t, repo.Create(ctx, u))

	exists, err := repo.ExistsByUsername(ctx, "frank")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}
