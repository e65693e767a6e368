package usecases

import (
	"context"
	"time"

	"preparos/internal/application/transfer/dto"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/mapper"
)

// ListTransfersQuery filters transfers. StartDate and EndDate are optional
// inclusive YYYY-MM-DD bounds.
type ListTransfersQuery struct {
	BatchID   *uint
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}

type ListTransfersUseCase struct {
	transferRepo transfer.Repository
	logger       logger.Interface
}

func NewListTransfersUseCase(transferRepo transfer.Repository, logger logger.Interface) *ListTransfersUseCase {
	return &ListTransfersUseCase{
		transferRepo: transferRepo,
		logger:       logger,
	}
}

func (uc *ListTransfersUseCase) Execute(ctx context.Context, query ListTransfersQuery) (*dto.ListTransfersResponse, error) {
	start, err := optionalDate(query.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := optionalDate(query.EndDate)
	if err != nil {
		return nil, err
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return nil, errors.NewValidationError("start date must not be after end date")
	}

	transfers, total, err := uc.transferRepo.List(ctx, transfer.ListFilter{
		BatchID:   query.BatchID,
		StartDate: start,
		EndDate:   end,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list transfers", "error", err)
		return nil, err
	}

	return &dto.ListTransfersResponse{
		Transfers: mapper.MapSlice(transfers, dto.ToTransferDTO),
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}

func optionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := biztime.ParseDate(s)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date", err.Error())
	}
	return d, nil
}
