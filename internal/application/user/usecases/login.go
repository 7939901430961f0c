package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type LoginCommand struct {
	// Username matches either the email or the phone of the account.
	Username string
	Password string
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       user.PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.FindByEmailOrPhone(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Unknown account and bad password answer with different messages.
	if existing == nil {
		return nil, apperrors.NewUnauthorizedError("no user found")
	}

	if err := existing.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, apperrors.NewUnauthorizedError("failed to login, check credentials")
	}

	token, err := uc.tokenService.Generate(existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginResult{User: existing, Token: token}, nil
}
