package usecases

import (
	"context"

	"preparos/internal/domain/session"
	"preparos/internal/shared/logger"
)

type DeleteSessionCommand struct {
	ID uint
}

type DeleteSessionUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewDeleteSessionUseCase(sessionRepo session.Repository, logger logger.Interface) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute removes the session together with its lines.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, cmd DeleteSessionCommand) error {
	if err := uc.sessionRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Warnw("failed to delete session", "session_id", cmd.ID, "error", err)
		return err
	}
	uc.logger.Infow("session deleted successfully", "session_id", cmd.ID)
	return nil
}
