package usecases

import (
	"context"

	"preparos/internal/application/session/dto"
	"preparos/internal/domain/session"
)

type GetSessionQuery struct {
	ID uint
}

type GetSessionUseCase struct {
	sessionRepo session.Repository
}

func NewGetSessionUseCase(sessionRepo session.Repository) *GetSessionUseCase {
	return &GetSessionUseCase{sessionRepo: sessionRepo}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, query GetSessionQuery) (*dto.SessionDTO, error) {
	s, err := uc.sessionRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToSessionDTO(s), nil
}
