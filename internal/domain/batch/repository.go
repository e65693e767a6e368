package batch

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, b *Batch) error
	Update(ctx context.Context, b *Batch) error
	GetByID(ctx context.Context, id uint) (*Batch, error)
	// List returns batches newest production date first.
	List(ctx context.Context, filter ListFilter) ([]*Batch, error)
	// ExistingIDs returns the subset of ids that exist.
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	// CountDependents counts consumption lines and transfers referencing the batch.
	CountDependents(ctx context.Context, id uint) (lines int64, transfers int64, err error)
	// Delete removes the batch. With cascade it first removes dependent
	// consumption lines and transfers; callers run it in a transaction.
	Delete(ctx context.Context, id uint, cascade bool) error
}

type ListFilter struct {
	// Query matches preparer, origin group or grade, case-insensitively.
	Query         string
	AvailableOnly bool
}
