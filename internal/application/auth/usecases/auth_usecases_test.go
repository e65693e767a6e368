package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/domain/profile"
	"preparos/internal/domain/user"
	"preparos/internal/shared/authorization"
	apperrors "preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

func registeredUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Ana@Example.com", "segredo123", authorization.RoleMember, plainHasher{})
	require.NoError(t, err)
	return u
}

func TestLoginUseCase(t *testing.T) {
	u := registeredUser(t)
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == u.Email() {
				return u, nil
			}
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	t.Run("valid credentials", func(t *testing.T) {
		store := newMockSessionStore()
		uc := NewLoginUseCase(userRepo, store, plainHasher{}, &mockJWTService{}, time.Hour, logger.NewNop())

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:     " ANA@example.com ",
			Password:  "segredo123",
			IPAddress: "10.0.0.1",
		})
		require.NoError(t, err)

		assert.Equal(t, "token-"+result.Session.ID, result.AccessToken)
		assert.Equal(t, int64(3600), result.ExpiresIn)
		assert.Contains(t, store.sessions, result.Session.ID)
		assert.Equal(t, u.ID(), result.Session.UserID)
	})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ana@example.com", "errada123"},
		{"unknown email", "bia@example.com", "segredo123"},
		{"malformed email", "ana", "segredo123"},
		{"empty password", "ana@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockSessionStore()
			uc := NewLoginUseCase(userRepo, store, plainHasher{}, &mockJWTService{}, time.Hour, logger.NewNop())

			_, err := uc.Execute(context.Background(), LoginCommand{Email: tt.email, Password: tt.password})
			require.Error(t, err)
			assert.True(t, apperrors.IsAuthError(err))
			assert.Empty(t, store.sessions)
		})
	}

	t.Run("token failure removes the session", func(t *testing.T) {
		store := newMockSessionStore()
		uc := NewLoginUseCase(userRepo, store, plainHasher{}, &mockJWTService{err: errors.New("signing failed")}, time.Hour, logger.NewNop())

		_, err := uc.Execute(context.Background(), LoginCommand{Email: "ana@example.com", Password: "segredo123"})
		require.Error(t, err)
		assert.Empty(t, store.sessions)
	})
}

func TestLogoutAndGetSession(t *testing.T) {
	store := newMockSessionStore()
	s, err := user.NewSession(uuid.New(), authorization.RoleAdmin, "", "", time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), s))

	got, err := NewGetSessionUseCase(store).Execute(context.Background(), GetSessionQuery{SessionID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	require.NoError(t, NewLogoutUseCase(store, logger.NewNop()).Execute(context.Background(), LogoutCommand{SessionID: s.ID}))

	_, err = NewGetSessionUseCase(store).Execute(context.Background(), GetSessionQuery{SessionID: s.ID})
	assert.True(t, apperrors.IsAuthError(err))
}

func TestGetMeUseCase(t *testing.T) {
	u := registeredUser(t)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
	}

	t.Run("without profile", func(t *testing.T) {
		me, err := NewGetMeUseCase(userRepo, &mockProfileRepository{}).Execute(context.Background(), GetMeQuery{UserID: u.ID()})
		require.NoError(t, err)
		assert.False(t, me.HasProfile)
		assert.Equal(t, "ana@example.com", me.Email)
	})

	t.Run("with profile", func(t *testing.T) {
		profiles := &mockProfileRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
				return profile.NewProfile(userID, "Ana Souza", profile.ThemeDark)
			},
		}
		me, err := NewGetMeUseCase(userRepo, profiles).Execute(context.Background(), GetMeQuery{UserID: u.ID()})
		require.NoError(t, err)
		assert.True(t, me.HasProfile)
	})
}

func TestCreateUserUseCase(t *testing.T) {
	var created *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	uc := NewCreateUserUseCase(repo, plainHasher{}, logger.NewNop())

	u, err := uc.Execute(context.Background(), CreateUserCommand{Email: "novo@example.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.Same(t, created, u)
	assert.Equal(t, authorization.RoleMember, u.Role())

	_, err = uc.Execute(context.Background(), CreateUserCommand{Email: "novo@example.com", Password: "curta"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateUserCommand{Email: "novo@example.com", Password: "segredo123", Role: "root"})
	assert.True(t, apperrors.IsValidationError(err))
}
