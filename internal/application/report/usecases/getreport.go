package usecases

import (
	"context"

	"preparos/internal/domain/session"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/logger"
)

type GetReportUseCase struct {
	builder *reportBuilder
	logger  logger.Interface
}

func NewGetReportUseCase(sessionRepo session.Repository, transferRepo transfer.Repository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{
		builder: &reportBuilder{sessionRepo: sessionRepo, transferRepo: transferRepo},
		logger:  logger,
	}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query ReportQuery) (*ReportDTO, error) {
	start, end, err := uc.builder.resolveRange(query)
	if err != nil {
		return nil, err
	}

	summary, err := uc.builder.build(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to build report", "start", start, "end", end, "error", err)
		return nil, err
	}
	return toReportDTO(summary, start, end), nil
}
