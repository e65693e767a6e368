package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"preparos/internal/domain/profile"
	"preparos/internal/domain/user"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/authorization"
)

// UserMapper converts users and their profiles.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ProfileToModel(p *profile.Profile) *models.ProfileModel
	ProfileToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID().String(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", model.ID, err)
	}
	return user.ReconstructUser(id, model.Email, model.PasswordHash, authorization.UserRole(model.Role), model.CreatedAt, model.UpdatedAt), nil
}

func (m *UserMapperImpl) ProfileToModel(p *profile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		UserID:           p.UserID().String(),
		FullName:         p.FullName(),
		Theme:            string(p.Theme()),
		ChangelogVersion: p.ChangelogVersion(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ProfileToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	id, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile user id %q: %w", model.UserID, err)
	}
	return profile.ReconstructProfile(id, model.FullName, profile.Theme(model.Theme), model.ChangelogVersion, model.UpdatedAt), nil
}
