// Package usecases implements the user application use cases.
package usecases

import (
	"context"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.UserRole) (string, error)
}

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID   uint
	Username string
	Email    string
	Role     string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username availability", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already exists")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterResult{
		UserID:   newUser.ID(),
		Username: newUser.Username(),
		Email:    newUser.Email(),
		Role:     newUser.Role().String(),
	}, nil
}
