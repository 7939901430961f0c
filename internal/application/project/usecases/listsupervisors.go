package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ListSupervisorsUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListSupervisorsUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListSupervisorsUseCase {
	return &ListSupervisorsUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute returns the supervisors as users, in the order they were added.
// A supervisor whose account has since been deleted is skipped.
func (uc *ListSupervisorsUseCase) Execute(ctx context.Context, projectID uint) ([]*user.User, error) {
	existing, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("project not found")
	}

	supervisors := make([]*user.User, 0, len(existing.Supervisors()))
	for _, userID := range existing.Supervisors() {
		u, err := uc.userRepo.FindByID(ctx, userID)
		if err != nil {
			uc.logger.Errorw("failed to load supervisor", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to load supervisor: %w", err)
		}
		if u == nil {
			continue
		}
		supervisors = append(supervisors, u)
	}

	return supervisors, nil
}
