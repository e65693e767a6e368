package usecases

import (
	"context"

	"github.com/google/uuid"

	"preparos/internal/application/session/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type CreateSessionCommand struct {
	SessionInput
	CreatedBy *uuid.UUID
}

type CreateSessionUseCase struct {
	sessionRepo session.Repository
	batchRepo   batch.Repository
	txManager   db.Transactor
	logger      logger.Interface
}

func NewCreateSessionUseCase(
	sessionRepo session.Repository,
	batchRepo batch.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		sessionRepo: sessionRepo,
		batchRepo:   batchRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute inserts the session and its lines in one transaction.
func (uc *CreateSessionUseCase) Execute(ctx context.Context, cmd CreateSessionCommand) (*dto.SessionDTO, error) {
	uc.logger.Infow("executing create session use case", "type", cmd.Type, "lines", len(cmd.Lines))

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	s, err := session.NewSession(details, cmd.CreatedBy)
	if err != nil {
		uc.logger.Warnw("invalid session", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	lines, err := normalizeLines(ctx, uc.batchRepo, cmd.Lines)
	if err != nil {
		uc.logger.Warnw("invalid consumption lines", "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.sessionRepo.Create(ctx, s); err != nil {
			return errors.WrapStep(session.StepCreateSession, err)
		}
		return errors.WrapStep(session.StepInsertLines, uc.sessionRepo.InsertLines(ctx, s.ID(), lines))
	})
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err)
		return nil, err
	}

	created, err := uc.sessionRepo.GetByID(ctx, s.ID())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("session created successfully", "session_id", s.ID())
	return dto.ToSessionDTO(created), nil
}
