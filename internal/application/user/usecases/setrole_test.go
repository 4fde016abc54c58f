package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestSetRoleUseCase_Execute(t *testing.T) {
	t.Run("promote user to admin", func(t *testing.T) {
		stored := newStoredUser(t, 2, "bob", authorization.RoleUser)
		var updated *user.User
		mockRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				assert.Equal(t, uint(2), id)
				return stored, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}

		useCase := NewSetRoleUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), SetRoleCommand{
			UserID:  2,
			NewRole: "admin",
			ActorID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin.String(), result.Role)
		require.NotNil(t, updated)
		assert.True(t, updated.IsAdmin())
	})

	t.Run("role is parsed case-insensitively", func(t *testing.T) {
		stored := newStoredUser(t, 3, "carol", authorization.RoleAdmin)
		mockRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return stored, nil
			},
		}

		useCase := NewSetRoleUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), SetRoleCommand{
			UserID:  3,
			NewRole: "USER",
			ActorID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.RoleUser.String(), result.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		useCase := NewSetRoleUseCase(&mockUserRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), SetRoleCommand{
			UserID:  2,
			NewRole: "superuser",
			ActorID: 1,
		})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, apperrors.NewNotFoundError("user not found")
			},
		}

		useCase := NewSetRoleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), SetRoleCommand{
			UserID:  404,
			NewRole: "admin",
			ActorID: 1,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
