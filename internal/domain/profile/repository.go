package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetByUserID returns a not found error when the user has no profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
