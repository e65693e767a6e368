package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"preparos/internal/domain/user"
	"preparos/internal/shared/errors"
)

type SessionDTO struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type GetSessionQuery struct {
	SessionID string
}

// GetSessionUseCase reports the current server session. Clients poll it to
// notice a sign-out from elsewhere.
type GetSessionUseCase struct {
	sessionRepo user.SessionRepository
}

func NewGetSessionUseCase(sessionRepo user.SessionRepository) *GetSessionUseCase {
	return &GetSessionUseCase{sessionRepo: sessionRepo}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, query GetSessionQuery) (*SessionDTO, error) {
	s, err := uc.sessionRepo.Get(ctx, query.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewSessionExpiredError()
		}
		return nil, err
	}
	return &SessionDTO{
		ID:        s.ID,
		UserID:    s.UserID,
		Role:      s.Role.String(),
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}, nil
}
