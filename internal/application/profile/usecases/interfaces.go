package usecases

import "context"

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*ProfileDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error)
}
