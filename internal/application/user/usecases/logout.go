package usecases

import (
	"context"

	"ticketdesk/internal/shared/logger"
)

type LogoutCommand struct {
	Username string
}

type LogoutResult struct {
	Message string
}

// LogoutUseCase acknowledges a logout. Tokens are stateless and simply
// expire; clients discard them on logout.
type LogoutUseCase struct {
	logger logger.Interface
}

func NewLogoutUseCase(logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) (*LogoutResult, error) {
	if cmd.Username != "" {
		uc.logger.Infow("user logged out", "username", cmd.Username)
	}
	return &LogoutResult{Message: "logged out"}, nil
}
