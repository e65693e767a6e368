package usecases

import (
	"context"

	"preparos/internal/application/transfer/dto"
	"preparos/internal/domain/transfer"
)

type GetTransferQuery struct {
	ID uint
}

type GetTransferUseCase struct {
	transferRepo transfer.Repository
}

func NewGetTransferUseCase(transferRepo transfer.Repository) *GetTransferUseCase {
	return &GetTransferUseCase{transferRepo: transferRepo}
}

func (uc *GetTransferUseCase) Execute(ctx context.Context, query GetTransferQuery) (*dto.TransferDTO, error) {
	t, err := uc.transferRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToTransferDTO(t), nil
}
