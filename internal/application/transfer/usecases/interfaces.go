package usecases

import (
	"context"

	"preparos/internal/application/transfer/dto"
)

type CreateTransferExecutor interface {
	Execute(ctx context.Context, cmd CreateTransferCommand) (*dto.TransferDTO, error)
}

type UpdateTransferExecutor interface {
	Execute(ctx context.Context, cmd UpdateTransferCommand) (*dto.TransferDTO, error)
}

type DeleteTransferExecutor interface {
	Execute(ctx context.Context, cmd DeleteTransferCommand) error
}

type GetTransferExecutor interface {
	Execute(ctx context.Context, query GetTransferQuery) (*dto.TransferDTO, error)
}

type ListTransfersExecutor interface {
	Execute(ctx context.Context, query ListTransfersQuery) (*dto.ListTransfersResponse, error)
}
