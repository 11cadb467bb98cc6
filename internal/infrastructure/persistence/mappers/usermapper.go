package mappers

import (
	"fmt"

	"eduhub/internal/domain/user"
	uservo "eduhub/internal/domain/user/valueobjects"
	"eduhub/internal/infrastructure/persistence/models"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/biztime"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name().String(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	name, err := uservo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid stored user name: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		name,
		model.Email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.Active,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
