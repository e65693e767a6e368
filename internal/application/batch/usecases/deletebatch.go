package usecases

import (
	"context"
	"fmt"

	"preparos/internal/domain/batch"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

// DeleteBatchCommand deletes a batch. Without Force the delete is refused
// while consumption lines or transfers reference the batch.
type DeleteBatchCommand struct {
	ID    uint
	Force bool
}

type DeleteBatchResult struct {
	RemovedLines     int64 `json:"removed_lines"`
	RemovedTransfers int64 `json:"removed_transfers"`
}

type DeleteBatchUseCase struct {
	batchRepo batch.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewDeleteBatchUseCase(batchRepo batch.Repository, txManager db.Transactor, logger logger.Interface) *DeleteBatchUseCase {
	return &DeleteBatchUseCase{
		batchRepo: batchRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteBatchUseCase) Execute(ctx context.Context, cmd DeleteBatchCommand) (*DeleteBatchResult, error) {
	uc.logger.Infow("executing delete batch use case", "batch_id", cmd.ID, "force", cmd.Force)

	result := &DeleteBatchResult{}
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.batchRepo.GetByID(ctx, cmd.ID); err != nil {
			return err
		}

		lines, transfers, err := uc.batchRepo.CountDependents(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if lines+transfers > 0 && !cmd.Force {
			return errors.NewConflictError(
				"batch is referenced by other records",
				fmt.Sprintf("%d consumption lines and %d transfers reference this batch; delete with force to remove them too", lines, transfers),
			)
		}

		if err := uc.batchRepo.Delete(ctx, cmd.ID, cmd.Force); err != nil {
			return err
		}
		result.RemovedLines = lines
		result.RemovedTransfers = transfers
		return nil
	})
	if err != nil {
		uc.logger.Warnw("batch not deleted", "batch_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("batch deleted successfully",
		"batch_id", cmd.ID,
		"removed_lines", result.RemovedLines,
		"removed_transfers", result.RemovedTransfers)
	return result, nil
}
