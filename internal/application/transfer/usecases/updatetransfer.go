package usecases

import (
	"context"

	"preparos/internal/application/transfer/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/services/markdown"
)

type UpdateTransferCommand struct {
	ID uint
	TransferInput
}

type UpdateTransferUseCase struct {
	transferRepo transfer.Repository
	batchRepo    batch.Repository
	sanitizer    markdown.MarkdownService
	logger       logger.Interface
}

func NewUpdateTransferUseCase(
	transferRepo transfer.Repository,
	batchRepo batch.Repository,
	sanitizer markdown.MarkdownService,
	logger logger.Interface,
) *UpdateTransferUseCase {
	return &UpdateTransferUseCase{
		transferRepo: transferRepo,
		batchRepo:    batchRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *UpdateTransferUseCase) Execute(ctx context.Context, cmd UpdateTransferCommand) (*dto.TransferDTO, error) {
	uc.logger.Infow("executing update transfer use case", "transfer_id", cmd.ID)

	details, err := cmd.toDetails(uc.sanitizer)
	if err != nil {
		return nil, err
	}

	t, err := uc.transferRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := t.Update(details); err != nil {
		uc.logger.Warnw("invalid transfer update", "transfer_id", cmd.ID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureBatchExists(ctx, uc.batchRepo, t.BatchID()); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update transfer", "transfer_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("transfer updated successfully", "transfer_id", cmd.ID)
	return dto.ToTransferDTO(t), nil
}
