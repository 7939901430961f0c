package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	existing, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return existing, nil
}
