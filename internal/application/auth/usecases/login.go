package usecases

import (
	"context"
	"time"

	"preparos/internal/domain/user"
	"preparos/internal/shared/authorization"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn int64
}

type JWTService interface {
	Generate(userUUID string, sessionID string, role authorization.UserRole) (*AccessToken, error)
}

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User        *user.User
	Session     *user.Session
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	sessionTTL     time.Duration
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

// Execute signs a user in with email and password. Unknown emails and
// wrong passwords produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("login failed", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	session, err := user.NewSession(existingUser.ID(), existingUser.Role(), cmd.IPAddress, cmd.UserAgent, uc.sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to store session", "error", err, "user_id", existingUser.ID())
		return nil, err
	}

	token, err := uc.jwtService.Generate(existingUser.ID().String(), session.ID, existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		_ = uc.sessionRepo.Delete(ctx, session.ID)
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID(), "session_id", session.ID)

	return &LoginResult{
		User:        existingUser,
		Session:     session,
		AccessToken: token.Token,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
