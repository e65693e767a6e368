package usecases

import (
	"context"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/transfer"
)

type mockTransferRepository struct {
	CreateFunc  func(ctx context.Context, t *transfer.Transfer) error
	UpdateFunc  func(ctx context.Context, t *transfer.Transfer) error
	GetByIDFunc func(ctx context.Context, id uint) (*transfer.Transfer, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error)
}

func (m *mockTransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	t.SetID(1)
	return nil
}

func (m *mockTransferRepository) Update(ctx context.Context, t *transfer.Transfer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTransferRepository) GetByID(ctx context.Context, id uint) (*transfer.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTransferRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTransferRepository) List(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockBatchRepository struct {
	batch.Repository
	ExistingIDsFunc func(ctx context.Context, ids []uint) ([]uint, error)
}

func (m *mockBatchRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.ExistingIDsFunc != nil {
		return m.ExistingIDsFunc(ctx, ids)
	}
	return ids, nil
}
