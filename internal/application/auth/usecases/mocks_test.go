package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
	"preparos/internal/domain/user"
	"preparos/internal/shared/authorization"
	"preparos/internal/shared/errors"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

// mockSessionStore keeps sessions in a map.
type mockSessionStore struct {
	sessions  map[string]*user.Session
	createErr error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*user.Session{}}
}

func (m *mockSessionStore) Create(ctx context.Context, s *user.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, sessionID string) (*user.Session, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type mockProfileRepository struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("profile not found")
}

func (m *mockProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	err error
}

func (m *mockJWTService) Generate(userUUID string, sessionID string, role authorization.UserRole) (*AccessToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &AccessToken{
		Token:     "token-" + sessionID,
		ExpiresAt: time.Now().Add(time.Hour),
		ExpiresIn: 3600,
	}, nil
}
