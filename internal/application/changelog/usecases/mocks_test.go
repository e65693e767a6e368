package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/domain/changelog"
	"preparos/internal/domain/profile"
	"preparos/internal/shared/errors"
)

type stubSource struct {
	releases []changelog.Release
	err      error
}

func (s *stubSource) Releases() ([]changelog.Release, error) {
	return s.releases, s.err
}

type mockProfileRepository struct {
	stored *profile.Profile
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if m.stored == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}
	return m.stored, nil
}

func (m *mockProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	m.stored = p
	return nil
}
