package balance

import (
	"context"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/domain/transfer"
)

type mockBatchRepository struct {
	batch.Repository
	ListFunc func(ctx context.Context, filter batch.ListFilter) ([]*batch.Batch, error)
}

func (m *mockBatchRepository) List(ctx context.Context, filter batch.ListFilter) ([]*batch.Batch, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockSessionRepository struct {
	session.Repository
	ListLinesFunc func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error)
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
