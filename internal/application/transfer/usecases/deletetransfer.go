package usecases

import (
	"context"

	"preparos/internal/domain/transfer"
	"preparos/internal/shared/logger"
)

type DeleteTransferCommand struct {
	ID uint
}

type DeleteTransferUseCase struct {
	transferRepo transfer.Repository
	logger       logger.Interface
}

func NewDeleteTransferUseCase(transferRepo transfer.Repository, logger logger.Interface) *DeleteTransferUseCase {
	return &DeleteTransferUseCase{
		transferRepo: transferRepo,
		logger:       logger,
	}
}

func (uc *DeleteTransferUseCase) Execute(ctx context.Context, cmd DeleteTransferCommand) error {
	if err := uc.transferRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Warnw("failed to delete transfer", "transfer_id", cmd.ID, "error", err)
		return err
	}
	uc.logger.Infow("transfer deleted successfully", "transfer_id", cmd.ID)
	return nil
}
