package usecases

import (
	"context"

	"preparos/internal/application/session/dto"
)

type CreateSessionExecutor interface {
	Execute(ctx context.Context, cmd CreateSessionCommand) (*dto.SessionDTO, error)
}

type UpdateSessionExecutor interface {
	Execute(ctx context.Context, cmd UpdateSessionCommand) (*dto.SessionDTO, error)
}

type DeleteSessionExecutor interface {
	Execute(ctx context.Context, cmd DeleteSessionCommand) error
}

type GetSessionExecutor interface {
	Execute(ctx context.Context, query GetSessionQuery) (*dto.SessionDTO, error)
}

type ListSessionsExecutor interface {
	Execute(ctx context.Context, query ListSessionsQuery) (*dto.ListSessionsResponse, error)
}
