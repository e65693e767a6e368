package usecases

import (
	"context"

	"preparos/internal/application/batch/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/shared/mapper"
)

// ListAvailableUseCase feeds the batch selector of the session form.
type ListAvailableUseCase struct {
	batchRepo batch.Repository
}

func NewListAvailableUseCase(batchRepo batch.Repository) *ListAvailableUseCase {
	return &ListAvailableUseCase{batchRepo: batchRepo}
}

func (uc *ListAvailableUseCase) Execute(ctx context.Context) ([]*dto.BatchDTO, error) {
	batches, err := uc.batchRepo.List(ctx, batch.ListFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}
	return mapper.MapSlice(batches, dto.ToBatchDTO), nil
}
