package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
	"preparos/internal/domain/user"
	"preparos/internal/shared/errors"
)

type MeDTO struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	HasProfile bool      `json:"has_profile"`
}

type GetMeQuery struct {
	UserID uuid.UUID
}

type GetMeUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
}

func NewGetMeUseCase(userRepo user.Repository, profileRepo profile.Repository) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, query GetMeQuery) (*MeDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	var hasProfile bool
	p, err := uc.profileRepo.GetByUserID(ctx, u.ID())
	switch {
	case errors.IsNotFoundError(err):
		hasProfile = false
	case err != nil:
		return nil, err
	default:
		hasProfile = p.IsComplete()
	}

	return &MeDTO{
		ID:         u.ID(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		HasProfile: hasProfile,
	}, nil
}
