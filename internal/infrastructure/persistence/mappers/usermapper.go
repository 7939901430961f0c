package mappers

import (
	"bugtrail/internal/domain/user"
	"bugtrail/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
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
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		ProjectOwner: u.IsProjectOwner(),
		ProfileImage: u.ProfileImage(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.PasswordHash,
		model.ProjectOwner,
		model.ProfileImage,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
