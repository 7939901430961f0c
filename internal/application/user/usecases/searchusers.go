package usecases

import (
	"context"
	"fmt"
	"strings"

	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/logger"
)

type SearchUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSearchUsersUseCase(userRepo user.Repository, logger logger.Interface) *SearchUsersUseCase {
	return &SearchUsersUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns users whose name or email starts with the given prefix.
// A blank prefix returns an empty result rather than the whole user table.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, prefix string) ([]*user.User, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []*user.User{}, nil
	}

	found, err := uc.userRepo.SearchByPrefix(ctx, prefix)
	if err != nil {
		uc.logger.Errorw("failed to search users", "error", err)
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return found, nil
}
