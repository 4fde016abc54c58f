package usecases

import "context"

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) (*LogoutResult, error)
}

type SetRoleExecutor interface {
	Execute(ctx context.Context, cmd SetRoleCommand) (*SetRoleResult, error)
}
