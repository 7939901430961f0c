package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID       uint
	Name         string
	Email        string
	Phone        string
	ProfileImage string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	if err := existing.UpdateProfile(cmd.Name, cmd.Email, cmd.Phone, cmd.ProfileImage); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("email or phone already in use")
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return existing, nil
}
