package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/user"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	db "bugtrail/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"phone":         model.Phone,
			"password_hash": model.PasswordHash,
			"profile_image": model.ProfileImage,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByEmailOrPhone(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) SearchByPrefix(ctx context.Context, prefix string) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	pattern := prefix + "%"
	if err := tx.
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}
