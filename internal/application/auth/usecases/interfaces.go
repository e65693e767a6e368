package usecases

import (
	"context"

	"preparos/internal/domain/user"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetSessionExecutor interface {
	Execute(ctx context.Context, query GetSessionQuery) (*SessionDTO, error)
}

type GetMeExecutor interface {
	Execute(ctx context.Context, query GetMeQuery) (*MeDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error)
}
