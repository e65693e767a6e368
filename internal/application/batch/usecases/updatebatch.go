package usecases

import (
	"context"

	"preparos/internal/application/batch/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type UpdateBatchCommand struct {
	ID uint
	BatchInput
}

type UpdateBatchUseCase struct {
	batchRepo batch.Repository
	logger    logger.Interface
}

func NewUpdateBatchUseCase(batchRepo batch.Repository, logger logger.Interface) *UpdateBatchUseCase {
	return &UpdateBatchUseCase{
		batchRepo: batchRepo,
		logger:    logger,
	}
}

func (uc *UpdateBatchUseCase) Execute(ctx context.Context, cmd UpdateBatchCommand) (*dto.BatchDTO, error) {
	uc.logger.Infow("executing update batch use case", "batch_id", cmd.ID)

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}

	b, err := uc.batchRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := b.Update(details); err != nil {
		uc.logger.Warnw("invalid batch update", "batch_id", cmd.ID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.batchRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update batch", "batch_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("batch updated successfully", "batch_id", cmd.ID)
	return dto.ToBatchDTO(b), nil
}
