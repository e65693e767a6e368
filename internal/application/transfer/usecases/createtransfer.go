package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/application/transfer/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/services/markdown"
)

type CreateTransferCommand struct {
	TransferInput
	CreatedBy *uuid.UUID
}

type CreateTransferUseCase struct {
	transferRepo transfer.Repository
	batchRepo    batch.Repository
	sanitizer    markdown.MarkdownService
	logger       logger.Interface
}

func NewCreateTransferUseCase(
	transferRepo transfer.Repository,
	batchRepo batch.Repository,
	sanitizer markdown.MarkdownService,
	logger logger.Interface,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		transferRepo: transferRepo,
		batchRepo:    batchRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *CreateTransferUseCase) Execute(ctx context.Context, cmd CreateTransferCommand) (*dto.TransferDTO, error) {
	uc.logger.Infow("executing create transfer use case", "batch_id", cmd.BatchID)

	details, err := cmd.toDetails(uc.sanitizer)
	if err != nil {
		return nil, err
	}
	t, err := transfer.NewTransfer(details, cmd.CreatedBy)
	if err != nil {
		uc.logger.Warnw("invalid transfer", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureBatchExists(ctx, uc.batchRepo, t.BatchID()); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create transfer", "error", err)
		return nil, err
	}

	uc.logger.Infow("transfer created successfully", "transfer_id", t.ID(), "batch_id", t.BatchID())
	return dto.ToTransferDTO(t), nil
}
