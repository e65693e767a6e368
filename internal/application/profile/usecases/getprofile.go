package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
)

type ProfileDTO struct {
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	Theme            string    `json:"theme"`
	ChangelogVersion string    `json:"changelog_version"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID:           p.UserID(),
		FullName:         p.FullName(),
		Theme:            string(p.Theme()),
		ChangelogVersion: p.ChangelogVersion(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

type GetProfileQuery struct {
	UserID uuid.UUID
}

type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(profileRepo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: profileRepo}
}

// Execute returns a not found error until the user completes a profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileDTO, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return ToProfileDTO(p), nil
}
