package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

// UpdateProfileCommand upserts the caller's profile. An empty Theme keeps
// the stored one.
type UpdateProfileCommand struct {
	UserID   uuid.UUID
	FullName string
	Theme    string
}

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	switch {
	case errors.IsNotFoundError(err):
		p, err = profile.NewProfile(cmd.UserID, cmd.FullName, profile.Theme(cmd.Theme))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	case err != nil:
		uc.logger.Errorw("failed to load profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	default:
		if err := p.Update(cmd.FullName, profile.Theme(cmd.Theme)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		uc.logger.Errorw("failed to save profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile saved", "user_id", cmd.UserID)
	return ToProfileDTO(p), nil
}
