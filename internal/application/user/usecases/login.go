package usecases

import (
	"context"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token    string
	UserID   uint
	Username string
	Role     string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	// Generic error whether the username is unknown or the password is
	// wrong, so probes cannot tell the two apart
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.tokenIssuer.Generate(existingUser.ID(), existingUser.Username(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "username", existingUser.Username())

	return &LoginResult{
		Token:    token,
		UserID:   existingUser.ID(),
		Username: existingUser.Username(),
		Role:     existingUser.Role().String(),
	}, nil
}
