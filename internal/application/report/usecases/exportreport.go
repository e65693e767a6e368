package usecases

import (
	"context"
	"fmt"
	"time"

	"preparos/internal/domain/session"
	"preparos/internal/domain/stock"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/logger"
)

// Exporter renders a report summary into a downloadable document.
type Exporter interface {
	Render(summary stock.Summary, start, end time.Time) ([]byte, error)
	Filename(start, end time.Time) string
	ContentType() string
}

type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ExportReportUseCase struct {
	builder  *reportBuilder
	exporter Exporter
	logger   logger.Interface
}

func NewExportReportUseCase(
	sessionRepo session.Repository,
	transferRepo transfer.Repository,
	exporter Exporter,
	logger logger.Interface,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		builder:  &reportBuilder{sessionRepo: sessionRepo, transferRepo: transferRepo},
		exporter: exporter,
		logger:   logger,
	}
}

func (uc *ExportReportUseCase) Execute(ctx context.Context, query ReportQuery) (*ExportResult, error) {
	start, end, err := uc.builder.resolveRange(query)
	if err != nil {
		return nil, err
	}

	summary, err := uc.builder.build(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to build report", "start", start, "end", end, "error", err)
		return nil, err
	}

	content, err := uc.exporter.Render(summary, start, end)
	if err != nil {
		uc.logger.Errorw("failed to render report", "error", err)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	uc.logger.Infow("report exported", "start", start, "end", end, "sessions", summary.SessionCount, "bytes", len(content))
	return &ExportResult{
		Filename:    uc.exporter.Filename(start, end),
		ContentType: uc.exporter.ContentType(),
		Content:     content,
	}, nil
}
