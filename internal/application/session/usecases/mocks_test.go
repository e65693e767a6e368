package usecases

import (
	"context"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
)

type mockSessionRepository struct {
	CreateFunc           func(ctx context.Context, s *session.Session) error
	UpdateDetailsFunc    func(ctx context.Context, s *session.Session) error
	GetByIDFunc          func(ctx context.Context, id uint) (*session.Session, error)
	ListFunc             func(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	InsertLinesFunc      func(ctx context.Context, sessionID uint, lines []session.LineInput) error
	UpdateLinesFunc      func(ctx context.Context, updates []session.LineUpdate) error
	DeleteLinesFunc      func(ctx context.Context, lineIDs []uint) error
	ListLinesFunc        func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error)
	ListLinesByBatchFunc func(ctx context.Context, batchID uint) ([]*session.BatchLine, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *session.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	s.SetID(1)
	return nil
}

func (m *mockSessionRepository) UpdateDetails(ctx context.Context, s *session.Session) error {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id uint) (*session.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionRepository) List(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) InsertLines(ctx context.Context, sessionID uint, lines []session.LineInput) error {
	if m.InsertLinesFunc != nil {
		return m.InsertLinesFunc(ctx, sessionID, lines)
	}
	return nil
}

func (m *mockSessionRepository) UpdateLines(ctx context.Context, updates []session.LineUpdate) error {
	if m.UpdateLinesFunc != nil {
		return m.UpdateLinesFunc(ctx, updates)
	}
	return nil
}

func (m *mockSessionRepository) DeleteLines(ctx context.Context, lineIDs []uint) error {
	if m.DeleteLinesFunc != nil {
		return m.DeleteLinesFunc(ctx, lineIDs)
	}
	return nil
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

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
