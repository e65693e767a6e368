package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/application/batch/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type CreateBatchCommand struct {
	BatchInput
	CreatedBy *uuid.UUID
}

type CreateBatchUseCase struct {
	batchRepo batch.Repository
	logger    logger.Interface
}

func NewCreateBatchUseCase(batchRepo batch.Repository, logger logger.Interface) *CreateBatchUseCase {
	return &CreateBatchUseCase{
		batchRepo: batchRepo,
		logger:    logger,
	}
}

func (uc *CreateBatchUseCase) Execute(ctx context.Context, cmd CreateBatchCommand) (*dto.BatchDTO, error) {
	uc.logger.Infow("executing create batch use case", "preparer", cmd.Preparer, "type", cmd.Type)

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}

	b, err := batch.NewBatch(details, cmd.CreatedBy)
	if err != nil {
		uc.logger.Warnw("invalid batch", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.batchRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create batch", "error", err)
		return nil, err
	}

	uc.logger.Infow("batch created successfully", "batch_id", b.ID())
	return dto.ToBatchDTO(b), nil
}
