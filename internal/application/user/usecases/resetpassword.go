package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ResetPasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("user not found")
	}

	if err := existing.VerifyPassword(cmd.CurrentPassword, uc.hasher); err != nil {
		return apperrors.NewUnauthorizedError("failed to login, check credentials")
	}

	if err := existing.SetPassword(cmd.NewPassword, uc.hasher); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("password reset", "user_id", cmd.UserID)
	return nil
}
