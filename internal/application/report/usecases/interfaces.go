package usecases

import "context"

type GetReportExecutor interface {
	Execute(ctx context.Context, query ReportQuery) (*ReportDTO, error)
}

type ExportReportExecutor interface {
	Execute(ctx context.Context, query ReportQuery) (*ExportResult, error)
}
