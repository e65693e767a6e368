package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
	"preparos/internal/shared/errors"
)

type mockProfileRepository struct {
	stored    *profile.Profile
	upserted  []*profile.Profile
	UpsertErr error
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if m.stored == nil || m.stored.UserID() != userID {
		return nil, errors.NewNotFoundError("profile not found")
	}
	return m.stored, nil
}

func (m *mockProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.upserted = append(m.upserted, p)
	m.stored = p
	return nil
}
