package usecases

import (
	"context"

	"preparos/internal/application/balance"
	"preparos/internal/application/batch/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/shared/logger"
)

type ListStockQuery struct {
	// Query filters by preparer, origin group or grade.
	Query string
}

type ListStockUseCase struct {
	batchRepo  batch.Repository
	calculator *balance.Calculator
	logger     logger.Interface
}

func NewListStockUseCase(batchRepo batch.Repository, calculator *balance.Calculator, logger logger.Interface) *ListStockUseCase {
	return &ListStockUseCase{
		batchRepo:  batchRepo,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute lists every matching batch with its balance, newest production
// date first.
func (uc *ListStockUseCase) Execute(ctx context.Context, query ListStockQuery) ([]dto.StockItemDTO, error) {
	batches, err := uc.batchRepo.List(ctx, batch.ListFilter{Query: query.Query})
	if err != nil {
		uc.logger.Errorw("failed to list batches", "error", err)
		return nil, err
	}

	balances, err := uc.calculator.Balances(ctx, batches)
	if err != nil {
		uc.logger.Errorw("failed to compute balances", "error", err)
		return nil, err
	}

	items := make([]dto.StockItemDTO, 0, len(batches))
	for _, b := range batches {
		items = append(items, dto.StockItemDTO{
			BatchDTO: *dto.ToBatchDTO(b),
			Balance:  dto.ToBalanceDTO(balances[b.ID()], uc.calculator.Threshold()),
		})
	}
	return items, nil
}
