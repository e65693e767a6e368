package usecases

import (
	"context"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/domain/transfer"
)

type mockBatchRepository struct {
	CreateFunc          func(ctx context.Context, b *batch.Batch) error
	UpdateFunc          func(ctx context.Context, b *batch.Batch) error
	GetByIDFunc         func(ctx context.Context, id uint) (*batch.Batch, error)
	ListFunc            func(ctx context.Context, filter batch.ListFilter) ([]*batch.Batch, error)
	ExistingIDsFunc     func(ctx context.Context, ids []uint) ([]uint, error)
	CountDependentsFunc func(ctx context.Context, id uint) (int64, int64, error)
	DeleteFunc          func(ctx context.Context, id uint, cascade bool) error
}

func (m *mockBatchRepository) Create(ctx context.Context, b *batch.Batch) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	b.SetID(1)
	return nil
}

func (m *mockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBatchRepository) GetByID(ctx context.Context, id uint) (*batch.Batch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBatchRepository) List(ctx context.Context, filter batch.ListFilter) ([]*batch.Batch, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockBatchRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.ExistingIDsFunc != nil {
		return m.ExistingIDsFunc(ctx, ids)
	}
	return ids, nil
}

func (m *mockBatchRepository) CountDependents(ctx context.Context, id uint) (int64, int64, error) {
	if m.CountDependentsFunc != nil {
		return m.CountDependentsFunc(ctx, id)
	}
	return 0, 0, nil
}

func (m *mockBatchRepository) Delete(ctx context.Context, id uint, cascade bool) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, cascade)
	}
	return nil
}

type mockSessionRepository struct {
	session.Repository
	ListLinesFunc        func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error)
	ListLinesByBatchFunc func(ctx context.Context, batchID uint) ([]*session.BatchLine, error)
}

func (m *mockSessionRepository) ListLines(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error) {
	if m.ListLinesFunc != nil {
		return m.ListLinesFunc(ctx, sessionIDs)
	}
	return nil, nil
}

func (m *mockSessionRepository) ListLinesByBatch(ctx context.Context, batchID uint) ([]*session.BatchLine, error) {
	if m.ListLinesByBatchFunc != nil {
		return m.ListLinesByBatchFunc(ctx, batchID)
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

// mockTransactor runs fn inline and records whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
