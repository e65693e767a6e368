package usecases

import (
	"context"

	"preparos/internal/application/batch/dto"
)

type CreateBatchExecutor interface {
	Execute(ctx context.Context, cmd CreateBatchCommand) (*dto.BatchDTO, error)
}

type UpdateBatchExecutor interface {
	Execute(ctx context.Context, cmd UpdateBatchCommand) (*dto.BatchDTO, error)
}

type DeleteBatchExecutor interface {
	Execute(ctx context.Context, cmd DeleteBatchCommand) (*DeleteBatchResult, error)
}

type GetBatchExecutor interface {
	Execute(ctx context.Context, query GetBatchQuery) (*dto.BatchDetailDTO, error)
}

type ListStockExecutor interface {
	Execute(ctx context.Context, query ListStockQuery) ([]dto.StockItemDTO, error)
}

type ListAvailableExecutor interface {
	Execute(ctx context.Context) ([]*dto.BatchDTO, error)
}
