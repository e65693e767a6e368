package usecases

import (
	"context"

	"preparos/internal/domain/user"
	"preparos/internal/shared/authorization"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

type CreateUserCommand struct {
	Email    string
	Password string
	Role     string
}

// CreateUserUseCase registers a credential. There is no public sign-up;
// the CLI is the only caller.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	role := authorization.UserRole(cmd.Role)
	if cmd.Role == "" {
		role = authorization.RoleMember
	}

	u, err := user.NewUser(cmd.Email, cmd.Password, role, uc.passwordHasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	return u, nil
}
