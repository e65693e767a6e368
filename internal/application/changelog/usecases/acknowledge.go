package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/domain/changelog"
	"preparos/internal/domain/profile"
	"preparos/internal/shared/logger"
)

type AcknowledgeCommand struct {
	UserID uuid.UUID
}

// AcknowledgeUseCase records the newest changelog version on the caller's
// profile so it is no longer reported as unseen.
type AcknowledgeUseCase struct {
	source      changelog.Source
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewAcknowledgeUseCase(source changelog.Source, profileRepo profile.Repository, logger logger.Interface) *AcknowledgeUseCase {
	return &AcknowledgeUseCase{
		source:      source,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *AcknowledgeUseCase) Execute(ctx context.Context, cmd AcknowledgeCommand) (string, error) {
	releases, err := uc.source.Releases()
	if err != nil {
		return "", err
	}
	latest := changelog.Latest(releases)

	p, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return "", err
	}
	p.AcknowledgeChangelog(latest)
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		uc.logger.Errorw("failed to store changelog acknowledgement", "user_id", cmd.UserID, "error", err)
		return "", err
	}

	uc.logger.Infow("changelog acknowledged", "user_id", cmd.UserID, "version", latest)
	return displayVersion(latest), nil
}
