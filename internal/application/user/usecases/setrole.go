package usecases

import (
	"context"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type SetRoleCommand struct {
	UserID  uint
	NewRole string
	ActorID uint
}

type SetRoleResult struct {
	UserID   uint
	Username string
	Role     string
}

type SetRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetRoleUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *SetRoleUseCase {
	return &SetRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SetRoleUseCase) Execute(ctx context.Context, cmd SetRoleCommand) (*SetRoleResult, error) {
	uc.logger.Infow("executing set role use case",
		"user_id", cmd.UserID,
		"new_role", cmd.NewRole,
		"actor_id", cmd.ActorID,
	)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	newRole, ok := authorization.ParseUserRole(cmd.NewRole)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	target.ChangeRole(newRole)

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user role updated",
		"user_id", target.ID(),
		"role", target.Role().String(),
		"actor_id", cmd.ActorID,
	)

	return &SetRoleResult{
		UserID:   target.ID(),
		Username: target.Username(),
		Role:     target.Role().String(),
	}, nil
}
