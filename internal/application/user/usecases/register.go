package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type RegisterCommand struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	ProjectOwner bool
}

type RegisterResult struct {
	User  *user.User
	Token string
}

type RegisterUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	exists, err := uc.userRepo.ExistsByEmailOrPhone(ctx, cmd.Email, cmd.Phone)
	if err != nil {
		uc.logger.Errorw("failed to check user existence", "error", err)
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("user with this email or phone already exists")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, cmd.Phone, cmd.ProjectOwner)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("user with this email or phone already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	token, err := uc.tokenService.Generate(newUser.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterResult{User: newUser, Token: token}, nil
}
