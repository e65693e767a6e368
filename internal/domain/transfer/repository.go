package transfer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Transfer) error
	Update(ctx context.Context, t *Transfer) error
	GetByID(ctx context.Context, id uint) (*Transfer, error)
	Delete(ctx context.Context, id uint) error
	// List returns transfers by date descending, then id descending.
	List(ctx context.Context, filter ListFilter) ([]*Transfer, int64, error)
}

// ListFilter narrows transfers. StartDate and EndDate are inclusive
// calendar days; zero values leave that side open. PageSize 0 returns
// every match.
type ListFilter struct {
	BatchID   *uint
	StartDate time.Time
	EndDate   time.Time
	Page      int
	PageSize  int
}
