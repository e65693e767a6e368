package usecases

import (
	"context"
	"time"

	"preparos/internal/domain/session"
	"preparos/internal/domain/stock"
	"preparos/internal/domain/transfer"
)

type mockSessionRepository struct {
	session.Repository
	ListFunc      func(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error)
	ListLinesFunc func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error)
}

func (m *mockSessionRepository) List(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSessionRepository) ListLines(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error) {
	if m.ListLinesFunc != nil {
		return m.ListLinesFunc(ctx, sessionIDs)
	}
	return nil, nil
}

type mockTransferRepository struct {
	transfer.Repository
	ListFunc func(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error)
}

func (m *mockTransferRepository) List(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockExporter struct {
	rendered *stock.Summary
}

func (m *mockExporter) Render(summary stock.Summary, start, end time.Time) ([]byte, error) {
	m.rendered = &summary
	return []byte("xlsx"), nil
}

func (m *mockExporter) Filename(start, end time.Time) string {
	return "relatorio_" + start.Format("20060102") + "_" + end.Format("20060102") + ".xlsx"
}

func (m *mockExporter) ContentType() string {
	return "application/octet-stream"
}
