package usecases

import (
	"context"

	"preparos/internal/application/session/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type UpdateSessionCommand struct {
	ID uint
	SessionInput
}

type UpdateSessionUseCase struct {
	sessionRepo session.Repository
	batchRepo   batch.Repository
	txManager   db.Transactor
	logger      logger.Interface
}

func NewUpdateSessionUseCase(
	sessionRepo session.Repository,
	batchRepo batch.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateSessionUseCase {
	return &UpdateSessionUseCase{
		sessionRepo: sessionRepo,
		batchRepo:   batchRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute saves the session fields and reconciles its lines against the
// stored ones. Unchanged lines are not touched; any failing step rolls the
// whole save back.
func (uc *UpdateSessionUseCase) Execute(ctx context.Context, cmd UpdateSessionCommand) (*dto.SessionDTO, error) {
	uc.logger.Infow("executing update session use case", "session_id", cmd.ID, "lines", len(cmd.Lines))

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	lines, err := normalizeLines(ctx, uc.batchRepo, cmd.Lines)
	if err != nil {
		uc.logger.Warnw("invalid consumption lines", "session_id", cmd.ID, "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		s, err := uc.sessionRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := s.Update(details); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.sessionRepo.UpdateDetails(ctx, s); err != nil {
			return errors.WrapStep(session.StepUpdateSession, err)
		}

		diff := session.DiffLines(s.Lines(), lines)
		if len(diff.Delete) > 0 {
			if err := uc.sessionRepo.DeleteLines(ctx, diff.Delete); err != nil {
				return errors.WrapStep(session.StepDeleteLines, err)
			}
		}
		if len(diff.Update) > 0 {
			if err := uc.sessionRepo.UpdateLines(ctx, diff.Update); err != nil {
				return errors.WrapStep(session.StepUpdateLines, err)
			}
		}
		if len(diff.Insert) > 0 {
			if err := uc.sessionRepo.InsertLines(ctx, s.ID(), diff.Insert); err != nil {
				return errors.WrapStep(session.StepInsertLines, err)
			}
		}

		uc.logger.Debugw("session lines reconciled",
			"session_id", s.ID(),
			"inserted", len(diff.Insert),
			"updated", len(diff.Update),
			"deleted", len(diff.Delete))
		return nil
	})
	if err != nil {
		step, _ := errors.FailedStep(err)
		uc.logger.Errorw("failed to update session", "session_id", cmd.ID, "step", step, "error", err)
		return nil, err
	}

	updated, err := uc.sessionRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("session updated successfully", "session_id", cmd.ID)
	return dto.ToSessionDTO(updated), nil
}
